package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/note/internal/models"
)

var errDiskFull = errors.New("disk full")

// failingWriter accepts n bytes, then fails every write.
type failingWriter struct {
	n int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if len(p) <= f.n {
		f.n -= len(p)
		return len(p), nil
	}
	written := f.n
	f.n = 0
	return written, errDiskFull
}

func TestPrintTable_ReportsWriteErrors(t *testing.T) {
	colls := []models.Collection{{ID: 1, Name: "work"}, {ID: 2, Name: "home"}}
	notes := []models.Note{{ID: 1, Body: "first", CollectionID: 1}}

	assert.ErrorIs(t, printCollections(&failingWriter{}, formatTable, colls), errDiskFull)
	assert.ErrorIs(t, printNotes(&failingWriter{}, formatTable, notes), errDiskFull)

	// a failure partway through the rows still surfaces
	assert.ErrorIs(t, printCollections(&failingWriter{n: 3}, formatTable, colls), errDiskFull)
}

func TestPrintTable_LargeListing(t *testing.T) {
	notes := make([]models.Note, 0, 2000)
	for i := 1; i <= 2000; i++ {
		notes = append(notes, models.Note{ID: int64(i), Body: strings.Repeat("x", 10), CollectionID: 1})
	}

	var buf bytes.Buffer
	require.NoError(t, printNotes(&buf, formatTable, notes))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2001)
	assert.Equal(t, "2000\txxxxxxxxxx", lines[1999])
	assert.Equal(t, "Found 2000 note(s).", lines[2000])
}
