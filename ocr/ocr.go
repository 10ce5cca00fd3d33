//go:build ocr

// Package ocr extracts alternative text for slide images by running
// them through the Tesseract OCR engine via gosseract. Courseware
// screenshots frequently contain the only copy of exercise text, so
// recognized text makes the generated HTML searchable and accessible.
//
// Tesseract must be installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for alt-text recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. Close it when no longer needed.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeFile performs OCR on the image file at path and returns the
// recognized text with surrounding whitespace trimmed.
func (c *Client) RecognizeFile(path string) (string, error) {
	if err := c.client.SetImage(path); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages
// join with "+" (e.g. "chi_sim+eng"); courseware is typically
// Simplified Chinese.
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}
