package credentials

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t, "creds_basic"))

	got, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Nil(t, got, "missing key reads as nil, not an error")

	require.NoError(t, s.Set(ctx, KeyToken, []byte("tok123")))
	got, err = s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok123"), got)

	// Upsert semantics.
	require.NoError(t, s.Set(ctx, KeyToken, []byte("tok456")))
	got, err = s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok456"), got)

	require.NoError(t, s.Delete(ctx, KeyToken))
	got, err = s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t, "creds_clear"))

	require.NoError(t, s.Set(ctx, KeyToken, []byte("t")))
	require.NoError(t, s.Set(ctx, KeyUser, []byte("u")))
	require.NoError(t, s.Clear(ctx))

	for _, key := range []string{KeyToken, KeyUser} {
		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestSQLiteStore_SetPairDeletePair(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t, "creds_pair"))

	require.NoError(t, s.SetPair(ctx, "tok123", []byte(`{"id":"1"}`)))

	token, user, ok, err := LoadPair(ctx, s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok123", token)
	assert.Equal(t, []byte(`{"id":"1"}`), user)

	require.NoError(t, s.DeletePair(ctx))
	_, _, ok, err = LoadPair(ctx, s)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadPair_LoneKeyIsAbsent(t *testing.T) {
	ctx := context.Background()

	t.Run("token only", func(t *testing.T) {
		s := NewSQLiteStore(setupDB(t, "creds_lone_token"))
		require.NoError(t, s.Set(ctx, KeyToken, []byte("tok123")))

		_, _, ok, err := LoadPair(ctx, s)
		require.NoError(t, err)
		assert.False(t, ok, "a token without a user record must read as no session")
	})

	t.Run("user only", func(t *testing.T) {
		s := NewSQLiteStore(setupDB(t, "creds_lone_user"))
		require.NoError(t, s.Set(ctx, KeyUser, []byte(`{"id":"1"}`)))

		_, _, ok, err := LoadPair(ctx, s)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestOpen_RunsMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, "file:creds_migrate?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Set(ctx, KeyToken, []byte("tok123")))

	got, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok123"), got)
}
