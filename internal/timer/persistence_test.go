package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
)

// These tests pin down exactly when the machine talks to its store: a write
// on every transition into running or paused, a clear on cancel/acknowledge,
// and silence everywhere else.

func TestPersistenceWriteSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	clock := newFakeClock()

	store.EXPECT().LoadSnapshot().Return(Snapshot{}, false)
	m := New(store, DefaultMinutes, WithClock(clock.Now))

	// Adjusting never touches the store.
	m.Apply(StartAdjust{})
	m.Apply(SetDuration{Minutes: 30})
	m.Apply(EnterDropZone{})

	store.EXPECT().SaveSnapshot(gomock.Any()).DoAndReturn(func(snap Snapshot) error {
		if snap.Status != "running" {
			t.Errorf("commit snapshot status = %q, want running", snap.Status)
		}
		if snap.Version != SnapshotVersion {
			t.Errorf("snapshot version = %d, want %d", snap.Version, SnapshotVersion)
		}
		if snap.Duration != 30*60 {
			t.Errorf("snapshot duration = %d, want %d", snap.Duration, 30*60)
		}
		return nil
	})
	m.Apply(Commit{})

	clock.Advance(10 * time.Second)
	store.EXPECT().SaveSnapshot(gomock.Any()).DoAndReturn(func(snap Snapshot) error {
		if snap.Status != "paused" {
			t.Errorf("pause snapshot status = %q, want paused", snap.Status)
		}
		if snap.EndMs != 0 {
			t.Errorf("paused snapshot should not carry an end time")
		}
		return nil
	})
	m.Apply(Pause{})

	store.EXPECT().SaveSnapshot(gomock.Any()).Return(nil)
	m.Apply(Resume{})

	store.EXPECT().ClearSnapshot().Return(nil)
	m.Apply(Cancel{})
}

func TestTickNeverWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	clock := newFakeClock()

	store.EXPECT().LoadSnapshot().Return(Snapshot{}, false)
	store.EXPECT().SaveSnapshot(gomock.Any()).Return(nil)
	m := New(store, DefaultMinutes, WithClock(clock.Now))
	m.Apply(Commit{})

	// A minute of ticking must not produce a single write.
	for i := 0; i < 60; i++ {
		clock.Advance(time.Second)
		m.Apply(Tick{})
	}
}

func TestClearFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	store.EXPECT().LoadSnapshot().Return(Snapshot{}, false)
	store.EXPECT().SaveSnapshot(gomock.Any()).Return(nil)
	store.EXPECT().ClearSnapshot().Return(errors.New("io error"))

	m := New(store, DefaultMinutes, WithClock(newFakeClock().Now))
	m.Apply(Commit{})
	if st := m.Apply(Cancel{}); st.Status != StatusIdle {
		t.Fatalf("clear failure must not block cancel, got %v", st.Status)
	}
}
