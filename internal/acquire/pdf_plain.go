package acquire

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfPlainStrategy is the second, independent PDF reader. It trades layout
// fidelity for robustness on files the structured pass cannot handle.
type pdfPlainStrategy struct{}

func (s *pdfPlainStrategy) Name() string { return "pdf-plain" }

func (s *pdfPlainStrategy) Extract(data []byte) (text string, err error) {
	// The reader panics on some malformed cross-reference tables; a strategy
	// failure must stay an ordinary error so the chain can continue.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("pdf reader panic: %v", rec)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf open: %w", err)
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= r.NumPage(); pageNr++ {
		page := r.Page(pageNr)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
