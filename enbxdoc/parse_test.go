package enbxdoc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	pkg := newPackage(t)

	meta, err := pkg.ParseMetadata()
	require.NoError(t, err)
	assert.Equal(t, "三年级数学", meta.Name)
	assert.Equal(t, "teacher01", meta.Creator)
	assert.Equal(t, "2021-03-01T08:30:00", meta.CreatedDateTime)
	assert.Equal(t, "2021-03-05T10:00:00", meta.ModifiedDateTime)
}

func TestParseMetadataMissingDescriptor(t *testing.T) {
	pkg := OpenPackage(t.TempDir())
	_, err := pkg.ParseMetadata()
	assert.ErrorIs(t, err, ErrMetadata)
}

func TestParseMetadataMalformed(t *testing.T) {
	root := t.TempDir()
	writePart(t, root, "Document.xml", "<Document><Name>oops")

	_, err := OpenPackage(root).ParseMetadata()
	assert.ErrorIs(t, err, ErrMetadata)
}

func TestParseMetadataPartialFields(t *testing.T) {
	root := t.TempDir()
	writePart(t, root, "Document.xml", `<Document><Name>  Untitled  </Name></Document>`)

	meta, err := OpenPackage(root).ParseMetadata()
	require.NoError(t, err)
	assert.Equal(t, "Untitled", meta.Name)
	assert.Empty(t, meta.Creator)
	assert.Empty(t, meta.CreatedDateTime)
}

func TestMetadataFields(t *testing.T) {
	meta := DocumentMetadata{Name: "n", Creator: "c"}
	fields := meta.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, [2]string{"Name", "n"}, fields[0])
	assert.Equal(t, [2]string{"Creator", "c"}, fields[1])
}

func TestParseBoard(t *testing.T) {
	pkg := newPackage(t)

	board, err := pkg.ParseBoard()
	require.NoError(t, err)
	assert.Equal(t, 1280.0, board.Width)
	assert.Equal(t, 720.0, board.Height)
	assert.Equal(t, []string{"s1", "s2"}, board.SlideIDs)
}

func TestParseBoardPreservesDeclaredOrder(t *testing.T) {
	root := t.TempDir()
	writePart(t, root, "Board.xml", `<Board>
  <SlideWidth>1280</SlideWidth>
  <SlideHeight>720</SlideHeight>
  <Slides><Item>z9</Item><Item>a1</Item><Item>m5</Item></Slides>
</Board>`)

	board, err := OpenPackage(root).ParseBoard()
	require.NoError(t, err)
	assert.Equal(t, []string{"z9", "a1", "m5"}, board.SlideIDs)
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"missing width", `<Board><SlideHeight>720</SlideHeight><Slides><Item>s1</Item></Slides></Board>`},
		{"non-numeric width", `<Board><SlideWidth>wide</SlideWidth><SlideHeight>720</SlideHeight><Slides><Item>s1</Item></Slides></Board>`},
		{"negative height", `<Board><SlideWidth>1280</SlideWidth><SlideHeight>-720</SlideHeight><Slides><Item>s1</Item></Slides></Board>`},
		{"zero width", `<Board><SlideWidth>0</SlideWidth><SlideHeight>720</SlideHeight><Slides><Item>s1</Item></Slides></Board>`},
		{"no slides", `<Board><SlideWidth>1280</SlideWidth><SlideHeight>720</SlideHeight><Slides></Slides></Board>`},
		{"blank slide ids only", `<Board><SlideWidth>1280</SlideWidth><SlideHeight>720</SlideHeight><Slides><Item>  </Item></Slides></Board>`},
		{"malformed xml", `<Board><SlideWidth>1280`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writePart(t, root, "Board.xml", tt.xml)
			_, err := OpenPackage(root).ParseBoard()
			assert.ErrorIs(t, err, ErrBoard)
		})
	}
}

func TestParseBoardMissingDescriptor(t *testing.T) {
	_, err := OpenPackage(t.TempDir()).ParseBoard()
	assert.ErrorIs(t, err, ErrBoard)
}

func TestParseReferences(t *testing.T) {
	pkg := newPackage(t)

	m, err := pkg.ParseReferences()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	// Windows separators normalized to forward slashes.
	target, ok := m.Lookup("1001")
	require.True(t, ok)
	assert.Equal(t, "Resources/1001/img.png", target)

	_, ok = m.Lookup("9999")
	assert.False(t, ok)
}

func TestParseReferencesAbsentManifest(t *testing.T) {
	pkg := OpenPackage(t.TempDir())

	m, err := pkg.ParseReferences()
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestParseReferencesDuplicateID(t *testing.T) {
	root := t.TempDir()
	writePart(t, root, "Reference.xml", `<Reference><Relationships>
  <Relationship><Id>1001</Id><Target>a.png</Target></Relationship>
  <Relationship><Id>1001</Id><Target>b.png</Target></Relationship>
</Relationships></Reference>`)

	_, err := OpenPackage(root).ParseReferences()
	assert.ErrorIs(t, err, ErrReference)
	assert.Contains(t, err.Error(), "1001")
}

func TestResolve(t *testing.T) {
	pkg := newPackage(t)
	m, err := pkg.ParseReferences()
	require.NoError(t, err)

	// 1001's target exists on disk.
	target, ok := m.Resolve("1001")
	assert.True(t, ok)
	assert.Equal(t, "Resources/1001/img.png", target)

	// 1002 is in the manifest but its file was never written.
	_, ok = m.Resolve("1002")
	assert.False(t, ok)

	_, ok = m.Resolve("9999")
	assert.False(t, ok)
}

func TestProbe(t *testing.T) {
	pkg := newPackage(t)
	m, err := pkg.ParseReferences()
	require.NoError(t, err)

	w, h, err := m.Probe("1001")
	require.NoError(t, err)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	_, _, err = m.Probe("1002")
	assert.Error(t, err)
}

func TestTargetsReturnsCopy(t *testing.T) {
	pkg := newPackage(t)
	m, err := pkg.ParseReferences()
	require.NoError(t, err)

	targets := m.Targets()
	targets["1001"] = "mutated"

	original, _ := m.Lookup("1001")
	assert.Equal(t, "Resources/1001/img.png", original)
}

func TestSourceID(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"id://1001", "1001", true},
		{"  id://42  ", "42", true},
		{"id://", "", false},
		{"file://x.png", "", false},
		{"1001", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := SourceID(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestErrorMessages(t *testing.T) {
	for _, err := range []error{ErrArchive, ErrMetadata, ErrBoard, ErrReference, ErrSlideMapping} {
		assert.Contains(t, err.Error(), "enbx:")
	}
	wrapped := fmt.Errorf("%w: extra", ErrBoard)
	assert.ErrorIs(t, wrapped, ErrBoard)
}
