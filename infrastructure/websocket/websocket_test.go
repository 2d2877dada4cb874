package websocket

import (
	"context"
	"sync"
	"testing"
	"time"

	"bizmanager/domain/ports"
)

type fakeConn struct {
	mu     sync.Mutex
	msgs   []Message
	closed bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, v.(Message))
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, m := range f.msgs {
		out = append(out, m.Type)
	}
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubBroadcastsAndFiltersByTopic(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := &fakeConn{}
	carsOnly := &fakeConn{}
	hub.Register(all, "admin")
	hub.Register(carsOnly, "admin")
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.HandleMessage(carsOnly, []byte(`{"type":"subscribe","data":{"entities":["car"]}}`))

	ctx := context.Background()
	hub.Publish(ctx, ports.NewChangeEvent(ports.EntityTask, ports.ActionCreated, 1, nil))
	hub.Publish(ctx, ports.NewChangeEvent(ports.EntityCar, ports.ActionUpdated, 2, nil))

	waitFor(t, func() bool { return len(all.types()) == 2 })
	waitFor(t, func() bool {
		got := carsOnly.types()
		return len(got) == 2 && got[0] == "subscribed" && got[1] == "car.updated"
	})
}

func TestHubUnregisterClosesConn(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	conn := &fakeConn{}
	hub.Register(conn, "admin")
	waitFor(t, func() bool { return hub.ClientCount() == 1 })
	hub.Unregister(conn)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	conn.mu.Lock()
	defer conn.mu.Unlock()
	if !conn.closed {
		t.Fatalf("connection should be closed")
	}
}

func TestPublishAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub()
	hub.Stop()
	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastBuffer*2; i++ {
			hub.Publish(context.Background(), ports.NewChangeEvent("task", "created", uint(i), nil))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Publish blocked")
	}
}
