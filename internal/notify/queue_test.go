package notify_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/aqari/internal/notify"
)

func TestQueue_PushOrder(t *testing.T) {
	q := notify.NewQueue()
	defer q.Close()

	first := q.Push("first", notify.KindSuccess)
	second := q.Push("second", notify.KindInfo)
	third := q.Push("third", notify.KindError)

	got := q.List()
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{first, second, third}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, notify.KindError, got[2].Kind)

	for _, n := range got {
		assert.Equal(t, notify.StateVisible, n.State)
	}
}

func TestQueue_AutoExpiry(t *testing.T) {
	q := notify.NewQueue(
		notify.WithDisplayFor(30*time.Millisecond),
		notify.WithExitAfter(10*time.Millisecond),
	)
	defer q.Close()

	q.Push("saved", notify.KindSuccess)
	require.Len(t, q.List(), 1)

	assert.Eventually(t, func() bool { return len(q.List()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestQueue_DismissIsIndependent(t *testing.T) {
	q := notify.NewQueue(
		notify.WithDisplayFor(400*time.Millisecond),
		notify.WithExitAfter(20*time.Millisecond),
	)
	defer q.Close()

	first := q.Push("first", notify.KindInfo)
	second := q.Push("second", notify.KindInfo)
	third := q.Push("third", notify.KindInfo)

	require.True(t, q.Dismiss(second))

	got := q.List()
	require.Len(t, got, 3)
	assert.Equal(t, notify.StateExpiring, got[1].State)

	assert.Eventually(t, func() bool { return len(q.List()) == 2 }, 200*time.Millisecond, 5*time.Millisecond)

	got = q.List()
	assert.Equal(t, first, got[0].ID)
	assert.Equal(t, third, got[1].ID)
	assert.Equal(t, notify.StateVisible, got[0].State)
	assert.Equal(t, notify.StateVisible, got[1].State)

	// The remaining two still expire on their own schedule.
	assert.Eventually(t, func() bool { return len(q.List()) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestQueue_Dismiss(t *testing.T) {
	type testCase struct {
		name string
		id   func(q *notify.Queue) uuid.UUID
		want bool
	}

	tests := []testCase{
		{
			name: "Visible",
			id:   func(q *notify.Queue) uuid.UUID { return q.Push("x", notify.KindInfo) },
			want: true,
		},
		{
			name: "Unknown",
			id:   func(_ *notify.Queue) uuid.UUID { return uuid.New() },
			want: false,
		},
		{
			name: "AlreadyExpiring",
			id: func(q *notify.Queue) uuid.UUID {
				id := q.Push("x", notify.KindInfo)
				q.Dismiss(id)

				return id
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := notify.NewQueue(notify.WithExitAfter(time.Second))
			defer q.Close()

			assert.Equal(t, tt.want, q.Dismiss(tt.id(q)))
		})
	}
}

func TestQueue_Changes(t *testing.T) {
	q := notify.NewQueue()

	q.Push("x", notify.KindInfo)

	select {
	case <-q.Changes():
	case <-time.After(time.Second):
		t.Fatal("expected a change signal")
	}

	q.Close()

	_, open := <-q.Changes()
	assert.False(t, open)
}
