package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches a chat connection to the hub and blocks until it closes.
func ServeWs(hub *Hub, conn *websocket.Conn, onMessage InboundHandler) {
	client := newClient(hub, conn)
	select {
	case hub.register <- client:
	case <-hub.done:
		conn.Close()
		return
	}

	go client.deliver()
	client.listen(onMessage)
}
