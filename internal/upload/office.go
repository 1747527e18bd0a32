package upload

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const slidePrefix = "ppt/slides/slide"

var errNoDocumentText = errors.New("no document text found")

// officeText returns the visible text of a DOCX document or a PPTX
// presentation, slides in order.
func officeText(r io.ReaderAt, size int64) (string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return "", err
	}

	var parts []*zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" || slideNumber(f.Name) > 0 {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return "", errNoDocumentText
	}
	sort.Slice(parts, func(i, j int) bool {
		return slideNumber(parts[i].Name) < slideNumber(parts[j].Name)
	})

	var b strings.Builder
	for _, f := range parts {
		if err := partText(f, &b); err != nil {
			return "", fmt.Errorf("%s: %w", f.Name, err)
		}
		if b.Len() > maxInspectBytes {
			break
		}
	}
	return collapseSpace(b.String()), nil
}

// slideNumber returns N for "ppt/slides/slideN.xml" and 0 otherwise.
func slideNumber(name string) int {
	rest, ok := strings.CutPrefix(name, slidePrefix)
	if !ok {
		return 0
	}
	rest, ok = strings.CutSuffix(rest, ".xml")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0
	}
	return n
}

// partText appends the text runs (<w:t>, <a:t>) of one XML part to b.
// Paragraph ends become spaces.
func partText(f *zip.File, b *strings.Builder) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() {
		_ = rc.Close()
	}()

	dec := xml.NewDecoder(rc)
	inText := false
	for b.Len() <= maxInspectBytes {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			inText = t.Name.Local == "t"
		case xml.EndElement:
			inText = false
			if t.Name.Local == "p" {
				b.WriteByte(' ')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return nil
}
