package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvOrFail(t *testing.T, ch chan []byte, want string) {
	t.Helper()
	select {
	case msg := <-ch:
		assert.Equal(t, want, string(msg))
	case <-time.After(2 * time.Second):
		t.Fatalf("expected %q on channel", want)
	}
}

func TestHub_BroadcastAndUnicast(t *testing.T) {
	h := NewHub()
	userID := uuid.New()
	client := &Client{send: make(chan []byte, 2), userID: userID}
	h.clients[client] = true

	go h.Run()
	defer h.Stop()

	h.BroadcastMessage([]byte("broadcast"))
	recvOrFail(t, client.send, "broadcast")

	h.SendToUser(userID, []byte("private"))
	recvOrFail(t, client.send, "private")
}

func TestHub_SendToUser_OnlyMatchingClientsReceive(t *testing.T) {
	h := NewHub()
	target := &Client{send: make(chan []byte, 1), userID: uuid.New()}
	other := &Client{send: make(chan []byte, 1), userID: uuid.New()}
	h.clients[target] = true
	h.clients[other] = true

	go h.Run()
	defer h.Stop()

	h.SendToUser(target.userID, []byte("only-target"))
	recvOrFail(t, target.send, "only-target")

	select {
	case <-other.send:
		t.Fatal("non-target client should not receive unicast")
	default:
	}
}

func TestHub_UnicastReachesEveryConnectionOfTheUser(t *testing.T) {
	h := NewHub()
	userID := uuid.New()
	tab1 := &Client{send: make(chan []byte, 1), userID: userID}
	tab2 := &Client{send: make(chan []byte, 1), userID: userID}
	h.clients[tab1] = true
	h.clients[tab2] = true

	go h.Run()
	defer h.Stop()

	h.SendToUser(userID, []byte("both"))
	recvOrFail(t, tab1.send, "both")
	recvOrFail(t, tab2.send, "both")
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	h := NewHub()
	// Zero-capacity send buffer with no reader: first delivery must drop it.
	slow := &Client{send: make(chan []byte), userID: uuid.New()}
	h.clients[slow] = true

	h.deliver(slow, []byte("x"))
	assert.NotContains(t, h.clients, slow)

	_, open := <-slow.send
	assert.False(t, open)
}

func TestHub_StopUnblocksSenders(t *testing.T) {
	h := NewHub()
	h.Stop()
	h.Stop() // idempotent

	done := make(chan struct{})
	go func() {
		h.BroadcastMessage([]byte("x"))
		h.SendToUser(uuid.New(), []byte("y"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("senders must not block after Stop")
	}
}

func TestHub_SenderHelpers(t *testing.T) {
	h := NewHub()

	gotBroadcast := make(chan []byte, 1)
	go func() { gotBroadcast <- <-h.broadcast }()
	h.BroadcastMessage([]byte("x"))
	require.Equal(t, "x", string(<-gotBroadcast))

	gotUnicast := make(chan UnicastMessage, 1)
	go func() { gotUnicast <- <-h.unicast }()
	uid := uuid.New()
	h.SendToUser(uid, []byte("y"))
	got := <-gotUnicast
	require.Equal(t, uid, got.UserID)
	require.Equal(t, "y", string(got.Message))
}
