package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// printResult writes an API result in the selected output format.
// Bare strings are printed as-is in pretty mode.
func printResult(w io.Writer, result any) error {
	if s, ok := result.(string); ok && outputFmt == "pretty" {
		_, err := fmt.Fprintln(w, s)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if outputFmt == "pretty" {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

// decodeJSONArg decodes a JSON command line value, keeping numbers exact.
func decodeJSONArg(name, raw string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%s: invalid JSON: %w", name, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: invalid JSON: unexpected data after value", name)
	}
	return v, nil
}
