package websocket

import "github.com/gofiber/websocket/v2"

// ServeWs registers the connection with the hub and blocks until it closes.
func ServeWs(hub *Hub, c *websocket.Conn, deviceID string) {
	client := &Client{Hub: hub, Conn: c, DeviceID: deviceID, Send: make(chan []byte, 256)}
	hub.register <- client

	go client.writePump()
	client.readPump()
}
