package enbxdoc

import (
	"fmt"
	"strings"
)

// documentXML mirrors the structure of Document.xml.
type documentXML struct {
	Name             string `xml:"Name"`
	Creator          string `xml:"Creator"`
	CreatedDateTime  string `xml:"CreatedDateTime"`
	ModifiedDateTime string `xml:"ModifiedDateTime"`
}

// ParseMetadata parses the document descriptor (Document.xml) at the
// package root. Unknown or missing fields default to empty strings; a
// wholly absent or unparsable descriptor fails with ErrMetadata. The
// conversion pipeline tolerates that failure and proceeds with empty
// metadata, but the decision belongs to the caller, not here.
func (p *Package) ParseMetadata() (DocumentMetadata, error) {
	var doc documentXML
	if err := decodeXMLFile(p.Path("Document.xml"), &doc); err != nil {
		return DocumentMetadata{}, fmt.Errorf("%w: %v", ErrMetadata, err)
	}

	return DocumentMetadata{
		Name:             strings.TrimSpace(doc.Name),
		Creator:          strings.TrimSpace(doc.Creator),
		CreatedDateTime:  strings.TrimSpace(doc.CreatedDateTime),
		ModifiedDateTime: strings.TrimSpace(doc.ModifiedDateTime),
	}, nil
}
