package acquire

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlStrategy handles site reports exported as HTML. It only claims bytes
// that look like markup, so it stays out of the way of binary formats.
type htmlStrategy struct{}

func (s *htmlStrategy) Name() string { return "html" }

func (s *htmlStrategy) Extract(data []byte) (string, error) {
	if !looksLikeHTML(data) {
		return "", fmt.Errorf("not an HTML document")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	// Block-level elements become their own lines so line- and
	// paragraph-based extraction still works on the stripped text.
	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return // leaf blocks only, avoids duplicating nested text
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	})

	if sb.Len() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return sb.String(), nil
}

// looksLikeHTML sniffs the leading bytes for an HTML document marker.
func looksLikeHTML(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	lower := bytes.ToLower(head)
	for _, marker := range [][]byte{[]byte("<!doctype html"), []byte("<html"), []byte("<body"), []byte("<head")} {
		if bytes.Contains(lower, marker) {
			return true
		}
	}
	return false
}
