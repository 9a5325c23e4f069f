package journal_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/objpool/pkg/objpool/journal"
)

func TestMemoryStore_Len(t *testing.T) {
	store := journal.NewMemoryStore()
	defer store.Close()

	assert.Equal(t, 0, store.Len())

	require.NoError(t, store.Append("pool-1", journal.KindRegistered, "a"))
	require.NoError(t, store.Append("pool-2", journal.KindRegistered, "b"))
	assert.Equal(t, 2, store.Len())

	require.NoError(t, store.DeletePool("pool-1"))
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	store := journal.NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Append("pool-1", journal.KindRegistered, "a"))

	events, err := store.List("pool-1")
	require.NoError(t, err)
	events[0].Detail = "mutated"

	fresh, err := store.List("pool-1")
	require.NoError(t, err)
	assert.Equal(t, "a", fresh[0].Detail)
}

func TestMemoryStore_ConcurrentAppend(t *testing.T) {
	store := journal.NewMemoryStore()
	defer store.Close()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				assert.NoError(t, store.Append("pool-1", journal.KindRegistered, "x"))
			}
		}()
	}
	wg.Wait()

	events, err := store.List("pool-1")
	require.NoError(t, err)
	require.Len(t, events, 800)
	for i, evt := range events {
		assert.Equal(t, i+1, evt.Sequence)
	}
}
