// Package form reads the study-material form submitted to /build.
package form

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"unicode"
)

// Form field names, shared with the HTML template and the upload script.
const (
	FieldCourseName    = "courseName"
	FieldDifficulty    = "difficulty"
	FieldSchoolLevel   = "schoolLevel"
	FieldSubject       = "subject"
	FieldRules         = "rules"
	FieldNumFlashCards = "numberFlashCard"
	FieldMaterial      = "subjectMaterial"
	FieldLastModified  = "lastModified"
)

// ErrNotMultipart is returned when the request body is not multipart/form-data.
var ErrNotMultipart = errors.New("request is not multipart/form-data")

// Submission is the parsed content of the study form.
type Submission struct {
	CourseName    string
	Difficulty    string
	SchoolLevel   string
	Subject       string
	Rules         string
	NumFlashCards *int

	Material     []*multipart.FileHeader
	LastModified []string
}

// SanitizeDigits removes every character that is not an ASCII digit.
func SanitizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return -1
		}
		return r
	}, s)
}

// ParseCount sanitizes raw and converts it to a count. An empty result means
// no count was given and yields nil. A number too large for an int is
// treated the same way.
func ParseCount(raw string) *int {
	digits := SanitizeDigits(raw)
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}

// FromRequest parses a multipart form of at most maxMemory bytes held in
// memory (larger files spill to disk) into a Submission. Once parsing has
// started, r.MultipartForm may hold temporary files even when an error is
// returned; the caller removes them.
func FromRequest(r *http.Request, maxMemory int64) (*Submission, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return nil, ErrNotMultipart
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	sub := &Submission{
		CourseName:    strings.TrimSpace(r.PostFormValue(FieldCourseName)),
		Difficulty:    strings.TrimSpace(r.PostFormValue(FieldDifficulty)),
		SchoolLevel:   strings.TrimSpace(r.PostFormValue(FieldSchoolLevel)),
		Subject:       strings.TrimSpace(r.PostFormValue(FieldSubject)),
		Rules:         strings.TrimSpace(r.PostFormValue(FieldRules)),
		NumFlashCards: ParseCount(r.PostFormValue(FieldNumFlashCards)),
	}
	if r.MultipartForm != nil {
		sub.Material = r.MultipartForm.File[FieldMaterial]
		sub.LastModified = r.MultipartForm.Value[FieldLastModified]
	}
	return sub, nil
}
