package handler

import (
	"context"
	"sync"

	"pos_cafe/database"

	"github.com/gofiber/contrib/websocket"
)

// orderClient is the slice of a websocket connection the feed needs.
type orderClient interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var (
	orderClients = make(map[orderClient]bool)
	orderMu      sync.Mutex
)

// broadcastOrderEvent fans one payload out to every connected dashboard,
// dropping clients whose write fails.
func broadcastOrderEvent(payload []byte) {
	orderMu.Lock()
	defer orderMu.Unlock()
	for conn := range orderClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(orderClients, conn)
		}
	}
}

// StartOrdersBroadcast opens the single redis subscription feeding every
// connected dashboard. One subscriber for the process, regardless of how
// many websocket clients attach.
func StartOrdersBroadcast() {
	if database.Redis == nil {
		return
	}

	pubsub := database.Redis.Subscribe(context.Background(), database.OrdersChannel)
	go func() {
		for msg := range pubsub.Channel() {
			broadcastOrderEvent([]byte(msg.Payload))
		}
	}()
}

// OrdersFeed registers the connection with the broadcaster and blocks on a
// read pump until the client goes away.
func OrdersFeed(c *websocket.Conn) {
	orderMu.Lock()
	orderClients[c] = true
	orderMu.Unlock()

	defer func() {
		orderMu.Lock()
		delete(orderClients, c)
		orderMu.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
