package acquire

// NoTextError indicates that no usable text could be acquired from any of
// the request's input paths.
type NoTextError struct{}

func (e *NoTextError) Error() string {
	return "no text available: provide a document or raw text"
}
