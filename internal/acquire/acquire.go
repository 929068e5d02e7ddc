// Package acquire normalizes the four supported request shapes — document
// upload, JSON body, form field, raw text body — into a single candidate
// text string for extraction. A document payload takes exclusive priority:
// when one is present and yields no text, the request fails rather than
// silently falling back to another source.
package acquire

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Source identifies which acquisition path produced the text.
type Source string

const (
	SourceDocument Source = "document"
	SourceForm     Source = "form"
	SourceJSON     Source = "json"
	SourcePlain    Source = "plain"
)

// jsonTextKeys are the accepted top-level JSON object keys, in priority
// order; the first present non-empty string wins.
var jsonTextKeys = []string{"text", "content", "raw_text"}

// DefaultMaxUploadBytes bounds request bodies and uploads when no explicit
// limit is configured.
const DefaultMaxUploadBytes = 15 << 20

// Adapter resolves request input into text using an explicit, injected
// strategy chain for document payloads.
type Adapter struct {
	chain          []Strategy
	maxUploadBytes int64
}

// NewAdapter creates an Adapter. A nil or empty chain falls back to
// DefaultChain; a non-positive limit falls back to DefaultMaxUploadBytes.
func NewAdapter(chain []Strategy, maxUploadBytes int64) *Adapter {
	if len(chain) == 0 {
		chain = DefaultChain()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Adapter{chain: chain, maxUploadBytes: maxUploadBytes}
}

// FromRequest resolves the request to one non-empty text string, trying the
// acquisition paths in their fixed priority order. It returns *NoTextError
// when no path yields usable text.
func (a *Adapter) FromRequest(r *http.Request) (string, Source, error) {
	ct := strings.ToLower(r.Header.Get("Content-Type"))

	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		return a.fromMultipart(r)

	case strings.HasPrefix(ct, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err == nil {
			if v := r.PostFormValue("text"); strings.TrimSpace(v) != "" {
				return v, SourceForm, nil
			}
		}

	case strings.Contains(ct, "application/json"):
		body, err := io.ReadAll(io.LimitReader(r.Body, a.maxUploadBytes))
		if err == nil {
			if text, ok := textFromJSON(body); ok {
				return text, SourceJSON, nil
			}
		}

	case strings.HasPrefix(ct, "text/plain"):
		body, err := io.ReadAll(io.LimitReader(r.Body, a.maxUploadBytes))
		if err == nil {
			// Permissive decode: undecodable bytes are replaced, not fatal.
			candidate := strings.ToValidUTF8(string(body), "�")
			if strings.TrimSpace(candidate) != "" {
				return candidate, SourcePlain, nil
			}
		}
	}

	return "", "", &NoTextError{}
}

// fromMultipart handles document uploads and the form text field. An
// uploaded file wins over a text field in the same request.
func (a *Adapter) fromMultipart(r *http.Request) (string, Source, error) {
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		return "", "", &NoTextError{}
	}

	file, _, err := r.FormFile("file")
	if err == nil {
		defer func() { _ = file.Close() }()
		data, readErr := io.ReadAll(io.LimitReader(file, a.maxUploadBytes))
		if readErr != nil {
			return "", "", &NoTextError{}
		}
		text, err := a.FromDocument(data)
		if err != nil {
			return "", "", err
		}
		return text, SourceDocument, nil
	}

	if v := r.FormValue("text"); strings.TrimSpace(v) != "" {
		return v, SourceForm, nil
	}

	return "", "", &NoTextError{}
}

// FromDocument runs the strategy chain over document bytes, short-circuiting
// on the first strategy whose output is non-empty after trimming.
func (a *Adapter) FromDocument(data []byte) (string, error) {
	text, _ := extractDocument(a.chain, data)
	if strings.TrimSpace(text) == "" {
		return "", &NoTextError{}
	}
	return text, nil
}

// textFromJSON accepts a top-level object carrying one of jsonTextKeys, or
// a bare JSON string.
func textFromJSON(body []byte) (string, bool) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}

	switch v := payload.(type) {
	case map[string]any:
		for _, key := range jsonTextKeys {
			if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
				return s, true
			}
		}
	case string:
		if strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}
