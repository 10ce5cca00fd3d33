package enbxdoc

import (
	"archive/zip"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const documentFixture = `<?xml version="1.0" encoding="utf-8"?>
<Document>
  <Name>三年级数学</Name>
  <Creator>teacher01</Creator>
  <CreatedDateTime>2021-03-01T08:30:00</CreatedDateTime>
  <ModifiedDateTime>2021-03-05T10:00:00</ModifiedDateTime>
</Document>`

const boardFixture = `<?xml version="1.0" encoding="utf-8"?>
<Board>
  <SlideWidth>1280</SlideWidth>
  <SlideHeight>720</SlideHeight>
  <Slides>
    <Item>s1</Item>
    <Item>s2</Item>
  </Slides>
</Board>`

const referenceFixture = `<?xml version="1.0" encoding="utf-8"?>
<Reference>
  <Relationships>
    <Relationship>
      <Id>1001</Id>
      <Target>Resources\1001\img.png</Target>
    </Relationship>
    <Relationship>
      <Id>1002</Id>
      <Target>Resources\1002\photo.jpg</Target>
    </Relationship>
  </Relationships>
</Reference>`

const slide1Fixture = `<?xml version="1.0" encoding="utf-8"?>
<Slide>
  <Id>s1</Id>
  <Elements>
    <Text>
      <X>100</X>
      <Y>50</Y>
      <Width>200</Width>
      <Height>40</Height>
      <RichText>
        <VerticalTextAlignment>Center</VerticalTextAlignment>
        <TextLines>
          <TextLine>
            <TextAlignment>Center</TextAlignment>
            <TextRuns>
              <TextRun>
                <Text>Hello</Text>
                <FontSize>24</FontSize>
                <FontFamily><Source>SimHei</Source></FontFamily>
                <Foreground><ColorBrush>#FF112233</ColorBrush></Foreground>
                <FontWeight>Bold</FontWeight>
              </TextRun>
            </TextRuns>
          </TextLine>
        </TextLines>
      </RichText>
    </Text>
  </Elements>
</Slide>`

const slide2Fixture = `<?xml version="1.0" encoding="utf-8"?>
<Slide>
  <Id>s2</Id>
  <Elements>
    <Picture>
      <X>10</X>
      <Y>20</Y>
      <Width>320</Width>
      <Height>240</Height>
      <Source>id://1001</Source>
    </Picture>
  </Elements>
</Slide>`

// pngPixel is a valid 1x1 PNG.
const pngPixel = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// writePart writes one package part under root, creating parents.
func writePart(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// writePNG writes a minimal decodable PNG at path.
func writePNG(t *testing.T, path string) {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(pngPixel)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// newPackage builds a complete unpacked fixture package: two declared
// slides, a two-entry manifest with one resolvable target.
func newPackage(t *testing.T) *Package {
	t.Helper()
	root := t.TempDir()
	writePart(t, root, "Document.xml", documentFixture)
	writePart(t, root, "Board.xml", boardFixture)
	writePart(t, root, "Reference.xml", referenceFixture)
	writePart(t, root, "Slides/s1.xml", slide1Fixture)
	writePart(t, root, "Slides/s2.xml", slide2Fixture)
	writePNG(t, filepath.Join(root, "Resources", "1001", "img.png"))
	return OpenPackage(root)
}

// buildArchive writes a ZIP archive containing the given parts and
// returns its path.
func buildArchive(t *testing.T, path string, parts map[string]string) string {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

// archiveFixture builds a packed .enbx mirroring newPackage's layout.
func archiveFixture(t *testing.T, dir string) string {
	t.Helper()

	data, err := base64.StdEncoding.DecodeString(pngPixel)
	require.NoError(t, err)

	return buildArchive(t, filepath.Join(dir, "lesson.enbx"), map[string]string{
		"Document.xml":           documentFixture,
		"Board.xml":              boardFixture,
		"Reference.xml":          referenceFixture,
		"Slides/s1.xml":          slide1Fixture,
		"Slides/s2.xml":          slide2Fixture,
		"Resources/1001/img.png": string(data),
	})
}
