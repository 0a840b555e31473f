// Package iojson has helpers for writing JSON output from command line
// interfaces.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteLine writes obj as a single compact JSON line. Used for JSON-lines
// output that scripts and LLMs consume.
func WriteLine(w io.Writer, obj any) error {
	return json.NewEncoder(w).Encode(obj)
}

// Write writes obj indented for human reading, followed by a newline.
func Write(w io.Writer, obj any) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
