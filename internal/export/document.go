package export

import (
	"encoding/json"
	"io"
)

// RangeDescriptor echoes the requested window in the artifact, either a
// human-readable bound or the literal "all".
type RangeDescriptor struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Document is the complete export artifact. Top-level key order follows
// the struct; the conversation-keyed maps serialize with sorted keys, so
// an unchanged source yields byte-identical contacts and messages
// sections across runs.
type Document struct {
	ExportTime string                        `json:"export_time"`
	TimeRange  RangeDescriptor               `json:"time_range"`
	Contacts   map[string]ContactSummary     `json:"contacts"`
	Messages   map[string][]FormattedMessage `json:"messages"`
}

// Encode writes the document as UTF-8 JSON with 2-space indentation.
// HTML escaping is off so CJK text and markup characters in message
// content stay literal.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(d)
}
