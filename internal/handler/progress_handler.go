package handler

import (
	"plagiarismpro-be/internal/pkg/logger"
	"plagiarismpro-be/internal/pkg/serverutils"
	internalWS "plagiarismpro-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ProgressHandler streams analysis progress frames to the device that owns the job.
type ProgressHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewProgressHandler(hub *internalWS.Hub, log logger.ILogger) *ProgressHandler {
	return &ProgressHandler{hub: hub, logger: log}
}

func (h *ProgressHandler) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	r.Get("/ws/analysis", guard, h.ServeWs)
}

// ServeWs upgrades the request. The device id is resolved by the device
// middleware before the upgrade, since the cookie is the only credential a
// browser WebSocket can carry.
func (h *ProgressHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	deviceID := serverutils.DeviceID(c)
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("PROGRESS", "Starting WebSocket session", map[string]interface{}{"device_id": deviceID})
		internalWS.ServeWs(h.hub, conn, deviceID)
		h.logger.Info("PROGRESS", "WebSocket session ended", map[string]interface{}{"device_id": deviceID})
	})(c)
}
