//go:build !ocr

package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubReportsDisabled(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrOCRNotEnabled)

	var c *Client
	assert.NoError(t, c.Close())

	_, err = c.RecognizeFile("x.png")
	assert.ErrorIs(t, err, ErrOCRNotEnabled)

	assert.ErrorIs(t, c.SetLanguage("chi_sim"), ErrOCRNotEnabled)
}
