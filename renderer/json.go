package renderer

import (
	"encoding/json"
	"io"
)

// WriteStatementsJSON writes the statements as an indented JSON array.
func WriteStatementsJSON(w io.Writer, statements []*Statement) error {
	if statements == nil {
		statements = []*Statement{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(statements)
}
