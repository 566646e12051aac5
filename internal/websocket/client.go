package websocket

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Chat connection timing and limits
const (
	writeTimeout   = 10 * time.Second
	idleTimeout    = 60 * time.Second
	keepAlive      = idleTimeout * 9 / 10
	maxFrameBytes  = 4096
	outboxCapacity = 256
)

// InboundHandler receives chat frames sent by a client.
type InboundHandler func(client *Client, data []byte)

// Client is one chat window attached to the hub. Conversation events reach
// it through Send; frames it sends are handed to an InboundHandler.
type Client struct {
	ID   string
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{ID: uuid.NewString(), Hub: hub, Conn: conn, Send: make(chan []byte, outboxCapacity)}
}

// Reply queues data for this client only. It reports false when the client
// is gone or its outbox is full.
func (c *Client) Reply(data []byte) (ok bool) {
	defer func() {
		// the hub may have closed Send already
		if recover() != nil {
			ok = false
		}
	}()
	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}

// listen reads chat frames until the peer leaves or stops answering pings.
func (c *Client) listen(onFrame InboundHandler) {
	defer func() {
		c.leave()
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxFrameBytes)
	c.extendDeadline()
	c.Conn.SetPongHandler(func(string) error { return c.extendDeadline() })

	for {
		kind, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Client", "Chat connection closed unexpectedly", map[string]interface{}{"client_id": c.ID, "error": err.Error()})
			}
			return
		}
		if kind != websocket.TextMessage || onFrame == nil {
			continue
		}
		onFrame(c, data)
	}
}

// leave detaches from the hub. A stopped hub has already released every client.
func (c *Client) leave() {
	select {
	case c.Hub.unregister <- c:
	case <-c.Hub.done:
	}
}

func (c *Client) extendDeadline() error {
	return c.Conn.SetReadDeadline(time.Now().Add(idleTimeout))
}

// deliver writes queued events, one JSON frame each, and pings while idle.
func (c *Client) deliver() {
	ticker := time.NewTicker(keepAlive)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case event, open := <-c.Send:
			if !open {
				c.write(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.write(websocket.TextMessage, event); err != nil {
				c.Hub.logger.Debug("Client", "Event write failed", map[string]interface{}{"client_id": c.ID, "error": err.Error()})
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) write(kind int, data []byte) error {
	c.Conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.Conn.WriteMessage(kind, data)
}
