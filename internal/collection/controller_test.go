package collection_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/notify"
)

type item struct {
	ID   int64
	Name string
}

func (i item) Key() int64 { return i.ID }

func (i item) WithKey(id int64) item {
	i.ID = id
	return i
}

var messages = collection.Messages{
	Added:   "added",
	Updated: "updated",
	Removed: "removed",
}

func seeded() *collection.Store[item] {
	return collection.NewStore(item{ID: 1, Name: "a"}, item{ID: 2, Name: "b"}, item{ID: 3, Name: "c"})
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}

	return out
}

func TestController_Add(t *testing.T) {
	type testCase struct {
		name      string
		placement collection.Placement
		draft     item
		wantID    int64
		wantOrder []string
	}

	tests := []testCase{
		{
			name:      "Append",
			placement: collection.Append,
			draft:     item{Name: "d"},
			wantID:    4,
			wantOrder: []string{"a", "b", "c", "d"},
		},
		{
			name:      "Prepend",
			placement: collection.Prepend,
			draft:     item{Name: "d"},
			wantID:    4,
			wantOrder: []string{"d", "a", "b", "c"},
		},
		{
			name:      "DraftKeyIgnored",
			placement: collection.Append,
			draft:     item{ID: 2, Name: "d"},
			wantID:    4,
			wantOrder: []string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			notifier := notify.NewMockNotifier(ctrl)
			notifier.EXPECT().Push("added", notify.KindSuccess).Times(1)

			c := collection.NewController(seeded(), notifier, collection.Config{
				Placement: tt.placement,
				Messages:  messages,
			})

			got, err := c.Add(context.Background(), tt.draft)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.wantOrder, names(c.List(context.Background())))
		})
	}
}

func TestController_AddAll(t *testing.T) {
	type testCase struct {
		name      string
		placement collection.Placement
		wantOrder []string
	}

	tests := []testCase{
		{name: "Append", placement: collection.Append, wantOrder: []string{"a", "b", "c", "d", "e"}},
		{name: "Prepend", placement: collection.Prepend, wantOrder: []string{"d", "e", "a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No Push expected: batches are reported by the caller.
			notifier := notify.NewMockNotifier(ctrl)

			c := collection.NewController(seeded(), notifier, collection.Config{
				Placement: tt.placement,
				Messages:  messages,
			})

			got, err := c.AddAll(context.Background(), []item{{ID: 9, Name: "d"}, {Name: "e"}})
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, int64(4), got[0].ID)
			assert.Equal(t, int64(5), got[1].ID)
			assert.Equal(t, tt.wantOrder, names(c.List(context.Background())))
		})
	}
}

func TestController_AddKeysAreUnique(t *testing.T) {
	c := collection.NewController(seeded(), nil, collection.Config{})

	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := c.Add(context.Background(), item{Name: "x"})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	seen := make(map[int64]bool)
	for _, it := range c.List(context.Background()) {
		assert.False(t, seen[it.ID], "duplicate key %d", it.ID)
		seen[it.ID] = true
	}

	assert.Len(t, seen, 53)
}

func TestController_Update(t *testing.T) {
	type testCase struct {
		name      string
		updated   item
		setupMock func(m *notify.MockNotifier)
		wantErr   error
		wantOrder []string
	}

	tests := []testCase{
		{
			name:    "KeepsPosition",
			updated: item{ID: 2, Name: "B"},
			setupMock: func(m *notify.MockNotifier) {
				m.EXPECT().Push("updated", notify.KindSuccess).Times(1)
			},
			wantOrder: []string{"a", "B", "c"},
		},
		{
			name:      "NotFound",
			updated:   item{ID: 99, Name: "z"},
			setupMock: func(_ *notify.MockNotifier) {},
			wantErr:   collection.ErrNotFound,
			wantOrder: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			notifier := notify.NewMockNotifier(ctrl)
			tt.setupMock(notifier)

			c := collection.NewController(seeded(), notifier, collection.Config{Messages: messages})

			_, err := c.Update(context.Background(), tt.updated)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantOrder, names(c.List(context.Background())))
		})
	}
}

func TestController_Remove(t *testing.T) {
	type testCase struct {
		name      string
		id        int64
		setupMock func(m *notify.MockNotifier)
		want      bool
		wantOrder []string
	}

	tests := []testCase{
		{
			name: "Existing",
			id:   2,
			setupMock: func(m *notify.MockNotifier) {
				m.EXPECT().Push("removed", notify.KindInfo).Times(1)
			},
			want:      true,
			wantOrder: []string{"a", "c"},
		},
		{
			name:      "Unknown",
			id:        42,
			setupMock: func(_ *notify.MockNotifier) {},
			want:      false,
			wantOrder: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			notifier := notify.NewMockNotifier(ctrl)
			tt.setupMock(notifier)

			c := collection.NewController(seeded(), notifier, collection.Config{Messages: messages})

			got, err := c.Remove(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOrder, names(c.List(context.Background())))
		})
	}
}

func TestController_SnapshotsAreStable(t *testing.T) {
	c := collection.NewController(seeded(), nil, collection.Config{})

	before := c.List(context.Background())

	_, err := c.Add(context.Background(), item{Name: "d"})
	require.NoError(t, err)

	_, err = c.Remove(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, names(before))
}

func TestController_LoadRaisesSequence(t *testing.T) {
	c := collection.NewController(collection.NewStore[item](), nil, collection.Config{})

	c.Load([]item{{ID: 10, Name: "x"}})

	got, err := c.Add(context.Background(), item{Name: "y"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)

	_, err = c.Get(context.Background(), 10)
	assert.NoError(t, err)

	_, err = c.Get(context.Background(), 5)
	assert.ErrorIs(t, err, collection.ErrNotFound)
}
