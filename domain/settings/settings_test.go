package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLStore_DefaultAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.db")
	s, err := OpenSQLStore(path, ClickySchema(), nil)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Bool(KeyPreferDark)
	require.NoError(t, err)
	assert.False(t, v, "default")

	require.NoError(t, s.SetBool(KeyPreferDark, true))
	require.NoError(t, s.SetBool(KeyPreferDark, true))
	v, err = s.Bool(KeyPreferDark)
	require.NoError(t, err)
	assert.True(t, v)

	var n int64
	require.NoError(t, s.db.Model(&entry{}).Count(&n).Error)
	assert.EqualValues(t, 1, n, "upsert keeps a single row")
}

func TestSQLStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	s, err := OpenSQLStore(path, ClickySchema(), nil)
	require.NoError(t, err)
	require.NoError(t, s.SetBool(KeyPreferDark, true))
	require.NoError(t, s.Close())

	s2, err := OpenSQLStore(path, ClickySchema(), nil)
	require.NoError(t, err)
	defer s2.Close()
	v, err := s2.Bool(KeyPreferDark)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestStores_UnknownKey(t *testing.T) {
	s, err := OpenSQLStore(filepath.Join(t.TempDir(), "s.db"), ClickySchema(), nil)
	require.NoError(t, err)
	defer s.Close()
	for _, b := range []Backend{s, NewMemoryStore(ClickySchema())} {
		_, err := b.Bool("prefer-light-mode")
		assert.ErrorIs(t, err, ErrUnknownKey)
		assert.ErrorIs(t, b.SetBool("prefer-light-mode", true), ErrUnknownKey)
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	m := NewMemoryStore(ClickySchema())
	v, err := m.Bool(KeyPreferDark)
	require.NoError(t, err)
	assert.False(t, v)
	require.NoError(t, m.SetBool(KeyPreferDark, true))
	v, _ = m.Bool(KeyPreferDark)
	assert.True(t, v)
}

func TestOpen_FallsBackToMemory(t *testing.T) {
	b, name := Open("", nil)
	assert.Equal(t, memoryBackend, name)
	assert.IsType(t, &MemoryStore{}, b)

	b, name = Open(filepath.Join(t.TempDir(), "ok.db"), nil)
	assert.Equal(t, sqliteBackend, name)
	if s, ok := b.(*SQLStore); ok {
		s.Close()
	}
}

func TestSQLStore_CorruptDatabaseFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("not a database "), 512), 0o600))

	s, err := OpenSQLStore(path, ClickySchema(), nil)
	assert.Error(t, err)
	assert.Nil(t, s)
	// The handle is released, so the file can be replaced by a fresh store.
	require.NoError(t, os.Remove(path))
	s, err = OpenSQLStore(path, ClickySchema(), nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
