package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// blankAmountsToNull reemplaza por null los importes enviados como texto vacío ("" o "  ").
// Los formularios envían los campos numéricos sin rellenar como "", que decimal no acepta.
func blankAmountsToNull(data []byte, keys ...string) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return data, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, err
	}
	changed := false
	for _, k := range keys {
		raw, ok := fields[k]
		if !ok {
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) == nil && strings.TrimSpace(s) == "" {
			fields[k] = json.RawMessage("null")
			changed = true
		}
	}
	if !changed {
		return data, nil
	}
	return json.Marshal(fields)
}
