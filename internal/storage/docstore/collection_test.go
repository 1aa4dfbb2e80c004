package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func noteID(n note) int64 { return n.ID }

func openNotes(t *testing.T, dir string) *Collection[note] {
	t.Helper()
	c, err := OpenCollection(dir, "notes", noteID)
	require.NoError(t, err)
	return c
}

func TestInsertNextAllocatesSequentially(t *testing.T) {
	c := openNotes(t, t.TempDir())

	assert.Equal(t, int64(1), c.NextID())

	for i := 1; i <= 5; i++ {
		doc, err := c.InsertNext(func(id int64) note {
			return note{ID: id, Title: fmt.Sprintf("note %d", i)}
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i), doc.ID)
	}
	assert.Equal(t, int64(6), c.NextID())
}

func TestInsertThenGetReturnsEqualRecord(t *testing.T) {
	c := openNotes(t, t.TempDir())

	inserted, err := c.InsertNext(func(id int64) note {
		return note{ID: id, Title: "emma"}
	})
	require.NoError(t, err)

	got, err := c.Get(inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, inserted, got)
}

func TestInsertRejectsDuplicateKey(t *testing.T) {
	c := openNotes(t, t.TempDir())

	_, err := c.Insert(note{ID: 7, Title: "first"})
	require.NoError(t, err)

	_, err = c.Insert(note{ID: 7, Title: "second"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// Original record untouched
	got, err := c.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
}

func TestNextIDSkipsPastCallerSuppliedIDs(t *testing.T) {
	c := openNotes(t, t.TempDir())

	_, err := c.Insert(note{ID: 42, Title: "imported"})
	require.NoError(t, err)

	doc, err := c.InsertNext(func(id int64) note {
		return note{ID: id, Title: "next"}
	})
	require.NoError(t, err)
	assert.Equal(t, int64(43), doc.ID)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	c := openNotes(t, t.TempDir())

	_, err := c.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReplacesWholesale(t *testing.T) {
	c := openNotes(t, t.TempDir())

	_, err := c.Insert(note{ID: 1, Title: "before"})
	require.NoError(t, err)

	updated, err := c.Update(1, note{ID: 1, Title: "after"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)

	_, err = c.Update(2, note{ID: 2, Title: "absent"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveReturnsRemovedRecord(t *testing.T) {
	c := openNotes(t, t.TempDir())

	_, err := c.Insert(note{ID: 1, Title: "doomed"})
	require.NoError(t, err)

	removed, err := c.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "doomed", removed.Title)

	_, err = c.Get(1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Remove(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScanKeepsInsertionOrderAndIsRestartable(t *testing.T) {
	c := openNotes(t, t.TempDir())

	// Insert out of id order to make order observable.
	_, err := c.Insert(note{ID: 3, Title: "c"})
	require.NoError(t, err)
	_, err = c.Insert(note{ID: 1, Title: "a"})
	require.NoError(t, err)
	_, err = c.Insert(note{ID: 2, Title: "b"})
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{all[0].ID, all[1].ID, all[2].ID})

	pred := func(n note) bool { return n.ID != 1 }
	first := c.Scan(pred)
	second := c.Scan(pred)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestCollectionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	c := openNotes(t, dir)

	for i := 0; i < 3; i++ {
		_, err := c.InsertNext(func(id int64) note {
			return note{ID: id, Title: fmt.Sprintf("note %d", id)}
		})
		require.NoError(t, err)
	}

	reopened := openNotes(t, dir)
	assert.Equal(t, 3, reopened.Len())
	assert.Equal(t, int64(4), reopened.NextID())

	all := reopened.All()
	require.Len(t, all, 3)
	// Order falls back to ascending ids after a reload.
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})
}

func TestOpenCollectionRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("not json"), 0o644))

	_, err := OpenCollection(dir, "notes", noteID)
	assert.Error(t, err)
}

func TestCountMatchesPredicate(t *testing.T) {
	c := openNotes(t, t.TempDir())

	for i := 1; i <= 4; i++ {
		_, err := c.Insert(note{ID: int64(i), Title: "n"})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, c.Count(func(n note) bool { return n.ID%2 == 0 }))
	assert.Equal(t, 4, c.Len())
}
