package enbxdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpack(t *testing.T) {
	dir := t.TempDir()
	src := archiveFixture(t, dir)
	dst := filepath.Join(dir, "out")

	require.NoError(t, Unpack(src, dst))

	for _, rel := range []string{
		"Document.xml", "Board.xml", "Reference.xml",
		"Slides/s1.xml", "Slides/s2.xml", "Resources/1001/img.png",
	} {
		_, err := os.Stat(filepath.Join(dst, filepath.FromSlash(rel)))
		assert.NoError(t, err, "expected %s to be extracted", rel)
	}
}

func TestUnpackOverwritesInPlace(t *testing.T) {
	dir := t.TempDir()
	src := archiveFixture(t, dir)
	dst := filepath.Join(dir, "out")

	require.NoError(t, Unpack(src, dst))

	// Tamper with an extracted part; a second unpack restores it.
	board := filepath.Join(dst, "Board.xml")
	require.NoError(t, os.WriteFile(board, []byte("garbage"), 0o644))

	require.NoError(t, Unpack(src, dst))
	data, err := os.ReadFile(board)
	require.NoError(t, err)
	assert.Equal(t, boardFixture, string(data))
}

func TestUnpackRejectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	err := Unpack(filepath.Join(dir, "nope.enbx"), filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, ErrArchive)
}

func TestUnpackRejectsNonZip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.enbx")
	require.NoError(t, os.WriteFile(src, []byte("not a zip archive"), 0o644))

	err := Unpack(src, filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, ErrArchive)
}

func TestUnpackRejectsForeignZip(t *testing.T) {
	dir := t.TempDir()
	src := buildArchive(t, filepath.Join(dir, "word.enbx"), map[string]string{
		"word/document.xml": "<x/>",
	})

	err := Unpack(src, filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, ErrArchive)
}

func TestUnpackRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	src := buildArchive(t, filepath.Join(dir, "evil.enbx"), map[string]string{
		"Board.xml":    boardFixture,
		"Document.xml": documentFixture,
		"../evil.txt":  "escaped",
	})

	dst := filepath.Join(dir, "sandbox", "out")
	err := Unpack(src, dst)
	assert.ErrorIs(t, err, ErrArchive)

	_, statErr := os.Stat(filepath.Join(dir, "sandbox", "evil.txt"))
	assert.True(t, os.IsNotExist(statErr), "traversal entry must not be written")
}
