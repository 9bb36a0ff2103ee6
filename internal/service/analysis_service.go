package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/entity"
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/repository/contract"
	"plagiarismpro-be/pkg/analysis"
	"plagiarismpro-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const ProgressTopic = "analysis.progress"

type IAnalysisService interface {
	// Submit validates the selection and starts a detached simulation.
	Submit(ctx context.Context, deviceID string, upload dto.UploadMeta) (*dto.JobResponse, error)
	// Await blocks until the job completes or ctx ends.
	Await(ctx context.Context, deviceID, jobID string) (*dto.JobResponse, error)
	Job(ctx context.Context, deviceID, jobID string) (*dto.JobResponse, error)
	// Drain waits for every running simulation.
	Drain()
}

type analysisService struct {
	workflow       *analysis.Workflow
	maxUploadBytes int64
	jobs           contract.JobRepository
	history        contract.HistoryRepository
	progress       message.Publisher
	eventPublisher EventPublisher
	logger         logger.ILogger

	mu      sync.Mutex
	waiters map[string]chan struct{}
	running sync.WaitGroup
}

func NewAnalysisService(
	workflow *analysis.Workflow,
	maxUploadBytes int64,
	jobs contract.JobRepository,
	history contract.HistoryRepository,
	progress message.Publisher,
	eventPublisher EventPublisher,
	log logger.ILogger,
) IAnalysisService {
	return &analysisService{
		workflow:       workflow,
		maxUploadBytes: maxUploadBytes,
		jobs:           jobs,
		history:        history,
		progress:       progress,
		eventPublisher: eventPublisher,
		logger:         log,
		waiters:        make(map[string]chan struct{}),
	}
}

func (s *analysisService) Submit(ctx context.Context, deviceID string, upload dto.UploadMeta) (*dto.JobResponse, error) {
	if err := analysis.CheckFile(upload.ContentType, upload.Size, s.maxUploadBytes); err != nil {
		s.logger.Info("ANALYSIS", "Upload rejected", map[string]interface{}{
			"device_id":    deviceID,
			"file":         upload.FileName,
			"content_type": upload.ContentType,
			"reason":       err.Error(),
		})
		return nil, err
	}

	now := time.Now().UTC()
	job := &entity.AnalysisJob{
		Id:        uuid.NewString(),
		DeviceId:  deviceID,
		FileName:  upload.FileName,
		State:     entity.JobStateProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.jobs.Save(job)
	res := dto.NewJobResponse(job)

	done := make(chan struct{})
	s.mu.Lock()
	s.waiters[job.Id] = done
	s.mu.Unlock()

	// The run outlives the request: uploads cannot be cancelled.
	runCtx := context.WithoutCancel(ctx)
	s.running.Add(1)
	go func() {
		defer s.running.Done()
		s.run(runCtx, job, done)
	}()

	s.logger.Info("ANALYSIS", "Simulation started", map[string]interface{}{
		"device_id": deviceID,
		"job_id":    job.Id,
		"file":      upload.FileName,
	})

	return &res, nil
}

func (s *analysisService) run(ctx context.Context, job *entity.AnalysisJob, done chan struct{}) {
	defer func() {
		s.mu.Lock()
		delete(s.waiters, job.Id)
		s.mu.Unlock()
		close(done)
	}()

	result, err := s.workflow.Run(ctx, job.FileName, func(p analysis.Phase) {
		job.Phase = p.Message
		job.Progress = p.Progress
		job.UpdatedAt = time.Now().UTC()
		s.jobs.Save(job)
		s.publishProgress(job)
	})
	if err == nil {
		var entry *entity.HistoryEntry
		entry, err = s.history.Append(ctx, job.DeviceId, result, time.Now())
		job.Entry = entry
	}

	job.UpdatedAt = time.Now().UTC()
	if err != nil {
		job.State = entity.JobStateFailed
		job.Error = err.Error()
		s.logger.Error("ANALYSIS", "Simulation failed", map[string]interface{}{
			"job_id": job.Id,
			"error":  err,
		})
	} else {
		job.State = entity.JobStateCompleted
	}
	s.jobs.Save(job)
	s.publishProgress(job)

	if job.State == entity.JobStateCompleted {
		publishEvent(ctx, s.eventPublisher, s.logger, events.AnalysisCompleted, map[string]interface{}{
			"device_id":        job.DeviceId,
			"job_id":           job.Id,
			"entry_id":         job.Entry.Id,
			"title":            job.Entry.Title,
			"plagiarism_score": job.Entry.PlagiarismScore,
		})
	}
}

func (s *analysisService) publishProgress(job *entity.AnalysisJob) {
	if s.progress == nil {
		return
	}
	payload, err := json.Marshal(dto.ProgressMessage{DeviceId: job.DeviceId, Job: dto.NewJobResponse(job)})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.progress.Publish(ProgressTopic, msg); err != nil {
		s.logger.Warn("ANALYSIS", "Failed to publish progress", map[string]interface{}{
			"job_id": job.Id,
			"error":  err.Error(),
		})
	}
}

func (s *analysisService) Job(_ context.Context, deviceID, jobID string) (*dto.JobResponse, error) {
	job, ok := s.jobs.Get(jobID)
	if !ok || job.DeviceId != deviceID {
		return nil, ErrJobNotFound
	}
	res := dto.NewJobResponse(job)
	return &res, nil
}

func (s *analysisService) Await(ctx context.Context, deviceID, jobID string) (*dto.JobResponse, error) {
	s.mu.Lock()
	done, running := s.waiters[jobID]
	s.mu.Unlock()

	if running {
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.Job(ctx, deviceID, jobID)
}

func (s *analysisService) Drain() {
	s.running.Wait()
}
