//go:build cgo

package upload

import (
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
)

// pdfTextPages is the number of leading pages read for a preview.
const pdfTextPages = 3

// pdfText extracts text from the first pages of a PDF until limit runes
// have been collected.
func pdfText(data []byte, limit int) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	var b strings.Builder
	for page := 0; page < doc.NumPage() && page < pdfTextPages; page++ {
		text, err := doc.Text(page)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
		b.WriteByte(' ')
		if utf8.RuneCountInString(b.String()) > limit {
			break
		}
	}
	return b.String(), nil
}
