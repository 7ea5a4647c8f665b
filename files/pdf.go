package files

import (
	"bytes"
	"strings"

	ledongthuc "github.com/ledongthuc/pdf"
	rscpdf "rsc.io/pdf"
)

// ExtractText pulls plain text out of an in-memory PDF, reading at
// most maxPages pages. rsc.io/pdf is tried first; ledongthuc/pdf runs
// only when the first pass collects nothing. Pages that are blank
// after trimming are dropped, the rest are joined with a blank line.
//
// The empty string is the "could not extract" signal: scanned or
// image-only PDFs are an expected input class, so errors and panics
// inside either library are absorbed rather than returned.
func ExtractText(data []byte, maxPages int) string {
	if maxPages <= 0 {
		maxPages = 20
	}
	chunks := extractPrimary(data, maxPages)
	if len(chunks) == 0 {
		chunks = extractFallback(data, maxPages)
	}
	return strings.TrimSpace(strings.Join(chunks, "\n\n"))
}

// PageCount returns the number of pages, or 0 when the document can't
// be opened by either library.
func PageCount(data []byte) (n int) {
	defer func() { _ = recover() }()
	if r, err := rscpdf.NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		return r.NumPage()
	}
	if r, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		return r.NumPage()
	}
	return 0
}

// extractPrimary walks up to maxPages pages with rsc.io/pdf. Fragments
// collected before a mid-document failure are kept.
func extractPrimary(data []byte, maxPages int) (chunks []string) {
	defer func() { _ = recover() }()
	r, err := rscpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}
	n := r.NumPage()
	if n > maxPages {
		n = maxPages
	}
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		var buf strings.Builder
		for _, t := range p.Content().Text {
			buf.WriteString(t.S)
		}
		if txt := strings.TrimSpace(buf.String()); txt != "" {
			chunks = append(chunks, txt)
		}
	}
	return chunks
}

func extractFallback(data []byte, maxPages int) (chunks []string) {
	defer func() { _ = recover() }()
	r, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil
	}
	n := r.NumPage()
	if n > maxPages {
		n = maxPages
	}
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		var buf strings.Builder
		for _, t := range p.Content().Text {
			buf.WriteString(t.S)
		}
		if txt := strings.TrimSpace(buf.String()); txt != "" {
			chunks = append(chunks, txt)
		}
	}
	return chunks
}
