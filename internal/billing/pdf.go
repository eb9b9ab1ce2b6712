package billing

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// CheckPDF parses the uploaded bytes as a PDF and returns the page
// count. It runs before any model call so an unreadable upload is
// rejected without spending an extraction request.
func CheckPDF(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty upload")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("not a readable PDF: %w", err)
	}

	pages := reader.NumPage()
	if pages < 1 {
		return 0, fmt.Errorf("PDF has no pages")
	}
	return pages, nil
}
