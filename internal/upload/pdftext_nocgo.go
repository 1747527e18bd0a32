//go:build !cgo

package upload

import "errors"

// pdfText needs MuPDF, which is only linked in cgo builds.
func pdfText(data []byte, limit int) (string, error) {
	return "", errors.New("pdf text extraction requires cgo")
}
