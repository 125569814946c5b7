package session

import (
	"testing"

	bolt "go.etcd.io/bbolt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	sess := domain.Session{
		ServerURL:   "http://media.local:8096",
		Username:    "alice",
		Password:    "hunter2",
		UserID:      "user-1",
		AccessToken: "token-abc",
	}
	require.NoError(t, store.Save(sess))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sess, *loaded)
}

func TestLoadWithoutSave(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(domain.Session{ServerURL: "http://old", Username: "a"}))
	require.NoError(t, store.Save(domain.Session{ServerURL: "http://new", Username: "b"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "http://new", loaded.ServerURL)
	assert.Equal(t, "b", loaded.Username)
}

func TestClear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(domain.Session{ServerURL: "http://media.local"}))
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing again is a no-op, not an error
	require.NoError(t, store.Clear())
}

func TestLoadCorruptRecord(t *testing.T) {
	store := newTestStore(t)

	err := store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keySession, []byte("{not json"))
	})
	require.NoError(t, err)

	// Corrupt data is treated as absent, not as an error
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
