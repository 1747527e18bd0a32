package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/sync/errgroup"

	"flashdeck/internal/contextutil"
)

const (
	// PreviewRunes is the maximum length of a text preview.
	PreviewRunes = 200
	// maxInspectBytes bounds how much of a text or HTML file is read.
	maxInspectBytes = 1 << 20
	// DefaultWorkers is used when Inspect is called with workers <= 0.
	DefaultWorkers = 4
	// maxPDFTextBytes is the largest PDF whose text is extracted for a preview.
	maxPDFTextBytes = 32 << 20
)

var errNoContent = errors.New("file content not available")

// Inspect reads every file in sel concurrently and returns a copy with
// previews, page counts and per-file errors filled in. At most workers reads
// run at once. Reads are independent; each writes only its own slot, and the
// result is returned only after all of them finish.
//
// A failing read is recorded on its descriptor. Inspect itself fails only
// when ctx is done.
func Inspect(ctx context.Context, sel Selection, workers int) (Selection, error) {
	logger := contextutil.LoggerFromContext(ctx)
	if workers <= 0 {
		workers = DefaultWorkers
	}

	out := make(Selection, len(sel))
	copy(out, sel)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range out {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := inspectFile(gctx, &out[i]); err != nil {
				logger.WarnContext(gctx, "failed to inspect uploaded file", "file", out[i].Name, "error", err)
				out[i].Error = err.Error()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("inspect selection: %w", err)
	}

	logger.DebugContext(ctx, "inspected upload selection", "files", len(out), "bytes", out.TotalSize())
	return out, nil
}

func inspectFile(ctx context.Context, fd *FileDescriptor) error {
	if fd.header == nil {
		return errNoContent
	}

	f, err := fd.header.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", fd.Name, err)
	}
	defer func() {
		_ = f.Close()
	}()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read %s: %w", fd.Name, err)
	}
	head = head[:n]
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", fd.Name, err)
	}

	if fd.Type == "" || fd.Type == "application/octet-stream" {
		fd.Type = stripParams(http.DetectContentType(head))
	}

	switch kindOf(fd.Name, fd.Type) {
	case kindPDF:
		pages, err := api.PageCount(f, pdfConfig())
		if err != nil {
			return fmt.Errorf("count pages of %s: %w", fd.Name, err)
		}
		fd.Pages = pages
		fd.Preview = pdfPreview(ctx, f, fd)
	case kindOffice:
		text, err := officeText(f, fd.Size)
		if err != nil {
			return fmt.Errorf("read document %s: %w", fd.Name, err)
		}
		fd.Preview = truncate(text, PreviewRunes)
	case kindHTML:
		text, err := htmlText(io.LimitReader(f, maxInspectBytes))
		if err != nil {
			return fmt.Errorf("parse html %s: %w", fd.Name, err)
		}
		fd.Preview = truncate(text, PreviewRunes)
	case kindText:
		data, err := io.ReadAll(io.LimitReader(f, maxInspectBytes))
		if err != nil {
			return fmt.Errorf("read %s: %w", fd.Name, err)
		}
		data = bytes.ToValidUTF8(data, []byte("�"))
		fd.Preview = truncate(collapseSpace(string(data)), PreviewRunes)
	}
	return ctx.Err()
}

type fileKind int

const (
	kindOther fileKind = iota
	kindText
	kindHTML
	kindPDF
	kindOffice
)

const (
	docxType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	pptxType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

func kindOf(name, contentType string) fileKind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return kindPDF
	case ".html", ".htm":
		return kindHTML
	case ".txt", ".md", ".csv":
		return kindText
	case ".docx", ".pptx":
		return kindOffice
	}
	switch {
	case contentType == "application/pdf":
		return kindPDF
	case contentType == docxType || contentType == pptxType:
		return kindOffice
	case contentType == "text/html":
		return kindHTML
	case strings.HasPrefix(contentType, "text/"):
		return kindText
	}
	return kindOther
}

// pdfPreview returns the text of the first pages of a PDF. Extraction is
// best effort: a PDF whose text cannot be read still has its page count.
func pdfPreview(ctx context.Context, f io.ReadSeeker, fd *FileDescriptor) string {
	if fd.Size > maxPDFTextBytes {
		return ""
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return ""
	}
	data, err := io.ReadAll(io.LimitReader(f, maxPDFTextBytes))
	if err != nil {
		return ""
	}
	text, err := pdfText(data, PreviewRunes)
	if err != nil {
		contextutil.LoggerFromContext(ctx).DebugContext(ctx, "no text preview for pdf", "file", fd.Name, "error", err)
		return ""
	}
	return truncate(collapseSpace(text), PreviewRunes)
}

func pdfConfig() *model.Configuration {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return cfg
}

// htmlText returns the visible text of an HTML document.
func htmlText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript, template").Remove()
	return collapseSpace(doc.Find("body").Text()), nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "…"
}

func stripParams(ct string) string {
	mediaType, _, _ := strings.Cut(ct, ";")
	return strings.TrimSpace(mediaType)
}
