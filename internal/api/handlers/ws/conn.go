package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// conn adapts a websocket connection to the registry. Writes are serialized
// because gorilla/websocket supports one concurrent writer.
type conn struct {
	ws        *websocket.Conn
	writeWait time.Duration

	mu        sync.Mutex
	closeOnce sync.Once
}

func newConn(ws *websocket.Conn, writeWait time.Duration) *conn {
	return &conn{ws: ws, writeWait: writeWait}
}

// Send writes message as a JSON text frame.
func (c *conn) Send(message any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeWait > 0 {
		if err := c.ws.SetWriteDeadline(time.Now().Add(c.writeWait)); err != nil {
			return err
		}
	}

	return c.ws.WriteJSON(message)
}

// CloseWith sends a close frame with the given code and closes the connection.
func (c *conn) CloseWith(code int, reason string) error {
	deadline := time.Now().Add(time.Second)
	if c.writeWait > 0 {
		deadline = time.Now().Add(c.writeWait)
	}

	_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
	return c.Close()
}

func (c *conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.ws.Close()
	})

	return err
}
