package objpool_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/objpool/pkg/objpool"
)

func TestOptionsFromYAML_Defaults(t *testing.T) {
	opts, err := objpool.OptionsFromYAML(nil)
	require.NoError(t, err)

	pool := objpool.New(opts...)
	rec := &recorder{}
	objpool.Add(pool, &resource{name: "a"}, releaseTo(rec))
	require.NoError(t, pool.Clear())
	assert.Equal(t, []string{"a"}, rec.names())
}

func TestOptionsFromYAML_LockKinds(t *testing.T) {
	for _, kind := range []string{"spin", "ticket", "mutex"} {
		t.Run(kind, func(t *testing.T) {
			opts, err := objpool.OptionsFromYAML([]byte("lock: " + kind))
			require.NoError(t, err)

			pool := objpool.New(opts...)
			objpool.Add(pool, &resource{name: "a"}, releaseTo(&recorder{}))
			assert.Equal(t, 1, pool.Len())
			require.NoError(t, pool.Clear())
		})
	}
}

func TestOptionsFromYAML_UnknownLock(t *testing.T) {
	_, err := objpool.OptionsFromYAML([]byte("lock: futex"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown lock kind")
}

func TestOptionsFromYAML_UnknownKeyRejected(t *testing.T) {
	_, err := objpool.OptionsFromYAML([]byte("lokc: spin"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse pool config")
}

func TestOptionsFromYAML_NegativeCapacity(t *testing.T) {
	_, err := objpool.OptionsFromYAML([]byte("capacity: -1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative capacity")
}

func TestOptionsFromYAML_MemoryJournal(t *testing.T) {
	opts, err := objpool.OptionsFromYAML([]byte("journal: memory\nid: pool-cfg\n"))
	require.NoError(t, err)

	pool := objpool.New(opts...)
	assert.Equal(t, "pool-cfg", pool.ID())

	objpool.Add(pool, &resource{name: "a"}, releaseTo(&recorder{}))
	require.NoError(t, pool.Clear())
}

func TestOptionsFromYAML_SQLiteJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objpool.db")
	opts, err := objpool.OptionsFromYAML([]byte("journal: " + path))
	require.NoError(t, err)

	pool := objpool.New(opts...)
	objpool.Add(pool, &resource{name: "a"}, releaseTo(&recorder{}))
	require.NoError(t, pool.Clear())
}

func TestOptionsFromJSON(t *testing.T) {
	opts, err := objpool.OptionsFromJSON([]byte(`{"lock": "ticket", "capacity": 16}`))
	require.NoError(t, err)

	pool := objpool.New(opts...)
	rec := &recorder{}
	objpool.Add(pool, &resource{name: "a"}, releaseTo(rec))
	require.NoError(t, pool.Close())
	assert.Equal(t, []string{"a"}, rec.names())
}

func TestOptionsFromJSON_UnknownKeyRejected(t *testing.T) {
	_, err := objpool.OptionsFromJSON([]byte(`{"lokc": "spin"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse pool config")
}

func TestOptionsFromFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pool.yaml")
		require.NoError(t, os.WriteFile(path, []byte("lock: mutex\n"), 0o644))

		opts, err := objpool.OptionsFromFile(path)
		require.NoError(t, err)

		pool := objpool.New(opts...)
		objpool.Add(pool, &resource{name: "a"}, releaseTo(&recorder{}))
		require.NoError(t, pool.Clear())
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pool.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"id": "pool-file"}`), 0o644))

		opts, err := objpool.OptionsFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "pool-file", objpool.New(opts...).ID())
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pool.toml")
		require.NoError(t, os.WriteFile(path, []byte("lock = 'spin'"), 0o644))

		_, err := objpool.OptionsFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported pool config extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := objpool.OptionsFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read pool config")
	})
}
