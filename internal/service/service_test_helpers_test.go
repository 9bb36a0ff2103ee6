package service

import (
	"context"
	"sync"

	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/repository/contract"
	"plagiarismpro-be/internal/repository/implementation"
	"plagiarismpro-be/internal/repository/memory"
	"plagiarismpro-be/pkg/events"
)

const testDevice = "4c9a3a6e-2b1f-4f55-9a61-2f1d6b0e7c11"

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type stores struct {
	device   contract.DeviceStorageRepository
	history  contract.HistoryRepository
	sessions contract.SessionRepository
}

func newStores() stores {
	device := memory.NewDeviceStorageRepository()
	log := logger.NewNopLogger()
	return stores{
		device:   device,
		history:  implementation.NewHistoryRepository(device, 10, log),
		sessions: implementation.NewSessionRepository(device, log),
	}
}
