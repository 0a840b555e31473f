package notify

import (
	"testing"

	"github.com/colonyops/tick/internal/core/notify"
)

func TestBus_PublishAndDrain(t *testing.T) {
	bus := NewBus()

	bus.Infof("hello %s", "world")
	bus.Errorf("boom")

	drained := bus.Drain()
	if len(drained) != 2 {
		t.Fatalf("drained %d notifications, want 2", len(drained))
	}

	if drained[0].Level != notify.LevelInfo || drained[0].Message != "hello world" {
		t.Errorf("first = %+v", drained[0])
	}
	if drained[1].Level != notify.LevelError || drained[1].Message != "boom" {
		t.Errorf("second = %+v", drained[1])
	}
	if drained[0].CreatedAt.IsZero() {
		t.Error("notifications must be timestamped on publish")
	}

	if again := bus.Drain(); again != nil {
		t.Errorf("second drain returned %d notifications, want none", len(again))
	}
}

func TestBus_Subscribe(t *testing.T) {
	bus := NewBus()

	var seen []notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		seen = append(seen, n)
	})

	bus.Warnf("careful")

	if len(seen) != 1 {
		t.Fatalf("subscriber saw %d notifications, want 1", len(seen))
	}
	if seen[0].Level != notify.LevelWarning {
		t.Errorf("level = %q, want warning", seen[0].Level)
	}
}
