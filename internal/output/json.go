package output

import (
	"encoding/json"
)

// JSONFormatter emits the document as indented JSON. Decimal fields
// marshal as quoted fixed-point strings, so a round-trip preserves totals
// to the cent.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
