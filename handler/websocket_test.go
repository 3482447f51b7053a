package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubFeedConn struct {
	messages [][]byte
	fail     bool
	closed   bool
}

func (s *stubFeedConn) WriteMessage(messageType int, data []byte) error {
	if s.fail {
		return errors.New("client gone")
	}
	s.messages = append(s.messages, data)
	return nil
}

func (s *stubFeedConn) Close() error {
	s.closed = true
	return nil
}

// Every event reaches each connected client exactly once, and a client
// whose write fails is dropped from the registry.
func TestBroadcastOrderEventDeliversOncePerClient(t *testing.T) {
	orderMu.Lock()
	saved := orderClients
	orderClients = make(map[orderClient]bool)
	orderMu.Unlock()
	t.Cleanup(func() {
		orderMu.Lock()
		orderClients = saved
		orderMu.Unlock()
	})

	first := &stubFeedConn{}
	second := &stubFeedConn{}
	dead := &stubFeedConn{fail: true}

	orderMu.Lock()
	orderClients[first] = true
	orderClients[second] = true
	orderClients[dead] = true
	orderMu.Unlock()

	broadcastOrderEvent([]byte(`{"orderNumber":"ORD-20260314-150926-123"}`))
	broadcastOrderEvent([]byte(`{"orderNumber":"ORD-20260314-150927-456"}`))

	assert.Len(t, first.messages, 2)
	assert.Len(t, second.messages, 2)
	assert.Empty(t, dead.messages)
	assert.True(t, dead.closed)

	orderMu.Lock()
	defer orderMu.Unlock()
	assert.Len(t, orderClients, 2)
	assert.False(t, orderClients[dead])
}
