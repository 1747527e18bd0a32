package upload

import (
	"mime"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FileDescriptor describes one selected file.
type FileDescriptor struct {
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`

	// Filled by Inspect.
	Preview string `json:"preview,omitempty"`
	Pages   int    `json:"pages,omitempty"`
	Error   string `json:"error,omitempty"`

	header *multipart.FileHeader
}

// Selection is an ordered list of selected files.
type Selection []FileDescriptor

// Names returns the file names in selection order.
func (s Selection) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// TotalSize returns the sum of all file sizes.
func (s Selection) TotalSize() int64 {
	var total int64
	for _, f := range s {
		total += f.Size
	}
	return total
}

// FromFileHeaders builds a selection from multipart file headers.
//
// lastModified holds Unix millisecond timestamps aligned with headers, as
// sent by the upload script. Missing or invalid entries fall back to
// received.
func FromFileHeaders(headers []*multipart.FileHeader, lastModified []string, received time.Time) Selection {
	sel := make(Selection, 0, len(headers))
	for i, fh := range headers {
		if fh == nil {
			continue
		}
		modified := received
		if i < len(lastModified) {
			if ms, err := strconv.ParseInt(strings.TrimSpace(lastModified[i]), 10, 64); err == nil && ms > 0 {
				modified = time.UnixMilli(ms).UTC()
			}
		}
		sel = append(sel, FileDescriptor{
			Name:         filepath.Base(fh.Filename),
			Type:         contentType(fh),
			Size:         fh.Size,
			LastModified: modified,
			header:       fh,
		})
	}
	return sel
}

func contentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			return mediaType
		}
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(fh.Filename))); byExt != "" {
		if mediaType, _, err := mime.ParseMediaType(byExt); err == nil {
			return mediaType
		}
	}
	return "application/octet-stream"
}
