package hub

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// ConnState is the per-connection lifecycle: Connecting until the hub has
// registered the connection, Open while it receives pushes, Closed forever
// after a transport close or error.
type ConnState int32

const (
	StateConnecting ConnState = iota
	StateOpen
	StateClosed
)

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	remote    string
	connState atomic.Int32
	closeOnce sync.Once
}

func newClient(h *Hub, conn *websocket.Conn, remote string) *Client {
	c := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		remote: remote,
	}
	c.connState.Store(int32(StateConnecting))
	return c
}

func (c *Client) state() ConnState {
	return ConnState(c.connState.Load())
}

func (c *Client) setState(s ConnState) {
	c.connState.Store(int32(s))
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.setState(StateClosed)
		close(c.send)
	})
}

// readPump exists only to notice the peer going away: clients send nothing on
// this channel (mutations go through the HTTP surface), so anything read is
// discarded.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
