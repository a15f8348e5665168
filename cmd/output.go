package cmd

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON encodes v as indented JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}
