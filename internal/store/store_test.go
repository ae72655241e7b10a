// internal/store/store_test.go
package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_WriteAndRead(t *testing.T) {
	s := newTestStore(t)

	in := testRecord{Name: "alpha", Count: 3}
	require.NoError(t, s.Write("rec_one", &in))

	var out testRecord
	require.NoError(t, s.Read("rec_one", &out))
	assert.Equal(t, in, out)
	assert.True(t, s.Exists("rec_one"))
}

func TestStore_ReadMissing(t *testing.T) {
	s := newTestStore(t)

	var out testRecord
	err := s.Read("nope", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_CreateRefusesDuplicate(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("rec", &testRecord{Name: "first"}))
	err := s.Create("rec", &testRecord{Name: "second"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// First write must survive.
	var out testRecord
	require.NoError(t, s.Read("rec", &out))
	assert.Equal(t, "first", out.Name)
}

func TestStore_WriteReplacesWhole(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write("rec", &testRecord{Name: "old", Count: 1}))
	require.NoError(t, s.Write("rec", &testRecord{Name: "new"}))

	var out testRecord
	require.NoError(t, s.Read("rec", &out))
	assert.Equal(t, "new", out.Name)
	assert.Zero(t, out.Count)
}

func TestStore_FindOrdersByModTimeDescending(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write("aaa_jane", &testRecord{Name: "older"}))
	require.NoError(t, s.Write("bbb_jane", &testRecord{Name: "newer"}))

	// Make mtimes unambiguous regardless of filesystem resolution.
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(s.Dir(), "aaa_jane.json"), old, old))

	entries, err := s.Find("*_jane")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bbb_jane", entries[0].Key)
	assert.Equal(t, "aaa_jane", entries[1].Key)
}

func TestStore_FindSkipsInvalidAndHiddenFiles(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write("good_jane", &testRecord{Name: "keep"}))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "bad_jane.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), ".tmp-partial_jane.json"), []byte("{}"), 0o644))

	entries, err := s.Find("*_jane")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "good_jane", entries[0].Key)
}

func TestStore_FindNoMatches(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.Find("*_nobody")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
