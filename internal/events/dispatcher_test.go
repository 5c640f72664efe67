package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_PublishInvokesSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var seen []Event
	d.Subscribe(EventEntryCreated, func(_ context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	event := Event{Type: EventEntryCreated, User: "ash", EntryID: "abc"}
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	if len(seen) != 1 || seen[0].EntryID != "abc" {
		t.Fatalf("handler not invoked correctly: %+v", seen)
	}
}

func TestDispatcher_OtherTypesNotInvoked(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventBoxCleared, func(context.Context, Event) error {
		called = true
		return nil
	})

	_ = d.Publish(context.Background(), Event{Type: EventEntryDeleted, User: "ash"})
	if called {
		t.Fatal("handler invoked for wrong event type")
	}
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var secondCalled bool
	d.Subscribe(EventEntryUpdated, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventEntryUpdated, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventEntryUpdated}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if !secondCalled {
		t.Fatal("second handler skipped after first errored")
	}
}
