package messages

// Template is one entry of the message catalog: a stable identifier, the
// per-language message texts and the HTTP status associated with the key.
type Template struct {
	ID         string
	Messages   map[string]string
	StatusCode int
}
