package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plagiarismpro-be/internal/pkg/logger"
)

func TestHubDeliversToDeviceOnly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)

	mine := &Client{Hub: hub, DeviceID: "d1", Send: make(chan []byte, 4)}
	other := &Client{Hub: hub, DeviceID: "d2", Send: make(chan []byte, 4)}
	hub.register <- mine
	hub.register <- other
	require.Eventually(t, func() bool { return hub.Connected("d1") == 1 && hub.Connected("d2") == 1 }, time.Second, time.Millisecond)

	hub.Send("d1", "analysis.progress", map[string]int{"progress": 40})

	select {
	case frame := <-mine.Send:
		var msg struct {
			Type string         `json:"type"`
			Data map[string]int `json:"data"`
		}
		require.NoError(t, json.Unmarshal(frame, &msg))
		assert.Equal(t, "analysis.progress", msg.Type)
		assert.Equal(t, 40, msg.Data["progress"])
	case <-time.After(time.Second):
		t.Fatal("no frame delivered")
	}
	assert.Empty(t, other.Send)

	hub.unregister <- mine
	require.Eventually(t, func() bool { return hub.Connected("d1") == 0 }, time.Second, time.Millisecond)
	_, open := <-mine.Send
	assert.False(t, open)
}

func TestHubDropsSlowClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)

	slow := &Client{Hub: hub, DeviceID: "d", Send: make(chan []byte)}
	hub.register <- slow
	require.Eventually(t, func() bool { return hub.Connected("d") == 1 }, time.Second, time.Millisecond)

	hub.Send("d", "x", nil)
	assert.Eventually(t, func() bool { return hub.Connected("d") == 0 }, time.Second, time.Millisecond)
}
