package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// client - one connection bound to a session. Only the read loop writes data frames,
// pings go through WriteControl which is safe to call concurrently.
type client struct {
	conn      *websocket.Conn
	sessionID string

	done      chan struct{}
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn, sessionID string) *client {
	c := &client{
		conn:      conn,
		sessionID: sessionID,
		done:      make(chan struct{}),
	}

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go c.keepAlive()

	return c
}

func (that *client) keepAlive() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-that.done:
			return
		case <-ticker.C:
			if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (that *client) send(action string, payload Payload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err = that.conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *client) sendError(action, message string) error {
	return that.send(action, Payload{Error: message})
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		_ = that.conn.Close()
	})
}
