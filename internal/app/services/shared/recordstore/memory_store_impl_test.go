package recordstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestMemoryRecordStore_LoadCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("absent collection is empty", func(t *testing.T) {
		store := NewMemoryRecordStore(zap.NewNop())

		var got []record
		require.NoError(t, store.LoadCollection(ctx, "doctors", &got))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("malformed collection is empty", func(t *testing.T) {
		store := NewMemoryRecordStore(zap.NewNop())
		store.SetRaw("doctors", `[{"id": "1",`)

		got := []record{{ID: "stale"}}
		require.NoError(t, store.LoadCollection(ctx, "doctors", &got))
		assert.Empty(t, got)
	})

	t.Run("null collection is empty", func(t *testing.T) {
		store := NewMemoryRecordStore(zap.NewNop())
		store.SetRaw("doctors", "null")

		var got []record
		require.NoError(t, store.LoadCollection(ctx, "doctors", &got))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("saved records round trip", func(t *testing.T) {
		store := NewMemoryRecordStore(zap.NewNop())
		require.NoError(t, store.SaveCollection(ctx, "doctors", []record{{ID: "1", Name: "Asha"}}))

		var got []record
		require.NoError(t, store.LoadCollection(ctx, "doctors", &got))
		assert.Equal(t, []record{{ID: "1", Name: "Asha"}}, got)
	})
}

func TestMemoryRecordStore_SaveCollection(t *testing.T) {
	store := NewMemoryRecordStore(zap.NewNop())

	var empty []record
	require.NoError(t, store.SaveCollection(context.Background(), "patients", empty))
	assert.Equal(t, "[]", store.Raw("patients"), "nil slice should be stored as an empty array")
}

func TestMemoryRecordStore_UpdateCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("failed mutation writes nothing", func(t *testing.T) {
		store := NewMemoryRecordStore(zap.NewNop())
		require.NoError(t, store.SaveCollection(ctx, "doctors", []record{{ID: "1"}}))

		var docs []record
		err := store.UpdateCollection(ctx, "doctors", &docs, func() error {
			docs = append(docs, record{ID: "2"})
			return errors.New("rejected")
		})
		require.Error(t, err)

		var got []record
		require.NoError(t, store.LoadCollection(ctx, "doctors", &got))
		assert.Len(t, got, 1)
	})

	t.Run("concurrent appends are all kept", func(t *testing.T) {
		store := NewMemoryRecordStore(zap.NewNop())

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				var docs []record
				err := store.UpdateCollection(ctx, "appointments", &docs, func() error {
					docs = append(docs, record{ID: fmt.Sprint(i)})
					return nil
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		var got []record
		require.NoError(t, store.LoadCollection(ctx, "appointments", &got))
		assert.Len(t, got, 50)
	})
}
