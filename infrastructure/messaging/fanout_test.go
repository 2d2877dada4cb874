package messaging

import (
	"context"
	"errors"
	"testing"

	"bizmanager/domain/ports"
)

type recordingPublisher struct {
	events []*ports.ChangeEvent
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, e *ports.ChangeEvent) error {
	r.events = append(r.events, e)
	return r.err
}

func TestFanoutDeliversToAllAndSwallowsErrors(t *testing.T) {
	failing := &recordingPublisher{err: errors.New("broker down")}
	ok := &recordingPublisher{}
	f := NewFanout(failing, nil, ok)

	event := ports.NewChangeEvent(ports.EntityTask, ports.ActionCreated, 1, nil)
	if err := f.Publish(context.Background(), event); err != nil {
		t.Fatalf("fanout must not fail: %v", err)
	}
	if len(failing.events) != 1 || len(ok.events) != 1 {
		t.Fatalf("expected one delivery each, got %d and %d", len(failing.events), len(ok.events))
	}
	if ok.events[0].Type != "task.created" {
		t.Fatalf("type = %q", ok.events[0].Type)
	}
}

func TestEmptyFanout(t *testing.T) {
	f := NewFanout(nil)
	if err := f.Publish(context.Background(), ports.NewChangeEvent(ports.EntityCar, ports.ActionDeleted, 3, nil)); err != nil {
		t.Fatalf("empty fanout: %v", err)
	}
}
