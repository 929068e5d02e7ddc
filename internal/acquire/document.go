package acquire

import "strings"

// Strategy extracts plain text from raw document bytes. A strategy that
// returns an error, or text that is empty after trimming, counts as a
// failure and the chain moves on to the next one.
type Strategy interface {
	Name() string
	Extract(data []byte) (string, error)
}

// DefaultChain returns the document extraction strategies in priority
// order: structure-aware PDF parsing first, a plain-text PDF reader second,
// HTML stripping last.
func DefaultChain() []Strategy {
	return []Strategy{
		&pdfStructuredStrategy{},
		&pdfPlainStrategy{},
		&htmlStrategy{},
	}
}

// extractDocument runs the strategy chain over the same bytes and returns
// the first non-empty result, never a later one.
func extractDocument(chain []Strategy, data []byte) (string, string) {
	for _, s := range chain {
		text, err := s.Extract(data)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text, s.Name()
		}
	}
	return "", ""
}
