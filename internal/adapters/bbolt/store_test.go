package bbolt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilminas/copycheck/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "refs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	ref := &ports.Reference{
		Name:    "melville",
		Text:    "Call me Ishmael.",
		Words:   3,
		AddedAt: time.Now().Unix(),
	}
	require.NoError(t, s.SaveReference(ref))

	got, err := s.LoadReference("melville")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ref, got)
}

func TestStore_LoadMissingReturnsNilNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.LoadReference("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveReference(&ports.Reference{Name: "a", Text: "v1"}))
	require.NoError(t, s.SaveReference(&ports.Reference{Name: "a", Text: "v2"}))

	got, err := s.LoadReference("a")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Text)
}

func TestStore_SaveRejectsEmptyName(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.SaveReference(&ports.Reference{Text: "x"}))
	assert.Error(t, s.SaveReference(nil))
}

func TestStore_ListSortedByName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, s.SaveReference(&ports.Reference{Name: name, Text: name}))
	}

	refs, err := s.ListReferences()
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, "alpha", refs[0].Name)
	assert.Equal(t, "bravo", refs[1].Name)
	assert.Equal(t, "charlie", refs[2].Name)
}

func TestStore_ListEmpty(t *testing.T) {
	s := newTestStore(t)
	refs, err := s.ListReferences()
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestStore_DeleteIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveReference(&ports.Reference{Name: "a", Text: "x"}))
	require.NoError(t, s.DeleteReference("a"))
	require.NoError(t, s.DeleteReference("a")) // second delete is not an error

	got, err := s.LoadReference("a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.db")

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveReference(&ports.Reference{Name: "kept", Text: "body"}))
	require.NoError(t, s.Close())

	s2, err := NewStore(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.LoadReference("kept")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "body", got.Text)
}
