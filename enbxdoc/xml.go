package enbxdoc

import (
	"encoding/xml"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// decodeXML decodes XML with charset support. EasiNote descriptors are
// usually UTF-8 but GBK/GB2312 declarations occur in older files;
// charset.NewReaderLabel handles both transparently.
func decodeXML(r io.Reader, v any) error {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return dec.Decode(v)
}

// decodeXMLFile decodes the XML file at path into v.
func decodeXMLFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return decodeXML(f, v)
}
