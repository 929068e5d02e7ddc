package acquire

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubStrategy is a canned strategy for chain-order tests.
type stubStrategy struct {
	name string
	text string
	err  error
}

func (s *stubStrategy) Name() string                     { return s.name }
func (s *stubStrategy) Extract(_ []byte) (string, error) { return s.text, s.err }

func TestExtractDocumentChainOrder(t *testing.T) {
	tests := []struct {
		name         string
		chain        []Strategy
		expectedText string
		expectedName string
	}{
		{
			name: "first success wins even when later strategies would succeed",
			chain: []Strategy{
				&stubStrategy{name: "first", text: "first text"},
				&stubStrategy{name: "second", text: "second text"},
			},
			expectedText: "first text",
			expectedName: "first",
		},
		{
			name: "failed strategy is skipped",
			chain: []Strategy{
				&stubStrategy{name: "first", err: fmt.Errorf("boom")},
				&stubStrategy{name: "second", text: "second text"},
			},
			expectedText: "second text",
			expectedName: "second",
		},
		{
			name: "whitespace-only output counts as failure",
			chain: []Strategy{
				&stubStrategy{name: "first", text: "   \n\t "},
				&stubStrategy{name: "second", text: "real text"},
			},
			expectedText: "real text",
			expectedName: "second",
		},
		{
			name: "all strategies failing yields nothing",
			chain: []Strategy{
				&stubStrategy{name: "first", err: fmt.Errorf("boom")},
				&stubStrategy{name: "second", text: ""},
			},
			expectedText: "",
			expectedName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, name := extractDocument(tt.chain, []byte("doc bytes"))
			assert.Equal(t, tt.expectedText, text)
			assert.Equal(t, tt.expectedName, name)
		})
	}
}

func TestDefaultChainOrder(t *testing.T) {
	chain := DefaultChain()
	var names []string
	for _, s := range chain {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"pdf-structured", "pdf-plain", "html"}, names)
}

func TestFromDocumentEmptyChainResult(t *testing.T) {
	a := NewAdapter([]Strategy{&stubStrategy{name: "never", text: ""}}, 0)
	_, err := a.FromDocument([]byte("garbage"))
	assert.ErrorAs(t, err, new(*NoTextError))
}
