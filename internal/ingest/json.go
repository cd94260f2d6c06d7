package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"dashgen/domain/tabular"
	"dashgen/internal/errors"
)

// JSONParser reads three JSON shapes: a top-level array of objects, an object
// wrapping a "data" array, or a plain object flattened to key/value rows.
//
// Column order follows the key order of the first object in the document, so
// identical bytes always produce identical datasets.
type JSONParser struct{}

// NewJSONParser creates a JSON parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements ports.TabularParser.
func (p *JSONParser) Parse(content []byte) (*tabular.Dataset, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, errors.ParseFailure("json", fmt.Errorf("empty document"))
	}

	switch trimmed[0] {
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return nil, errors.ParseFailure("json", err)
		}
		return p.parseObjectArray(elements)
	case '{':
		return p.parseObject(trimmed)
	default:
		return nil, errors.ParseFailure("json",
			fmt.Errorf("document must be an array of objects or an object"))
	}
}

// parseObject handles the {"data": [...]} wrapper and the key/value fallback.
func (p *JSONParser) parseObject(content []byte) (*tabular.Dataset, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(content, &fields); err != nil {
		return nil, errors.ParseFailure("json", err)
	}

	if data, ok := fields["data"]; ok {
		inner := bytes.TrimSpace(data)
		if len(inner) > 0 && inner[0] == '[' {
			var elements []json.RawMessage
			if err := json.Unmarshal(inner, &elements); err != nil {
				return nil, errors.ParseFailure("json", err)
			}
			return p.parseObjectArray(elements)
		}
	}

	// Plain object: one row per entry, in document order.
	keys, values, err := objectEntriesInOrder(content)
	if err != nil {
		return nil, errors.ParseFailure("json", err)
	}
	rows := make([][]string, len(keys))
	for i, key := range keys {
		rows[i] = []string{key, renderScalar(values[i])}
	}
	return &tabular.Dataset{Headers: []string{"key", "value"}, Rows: rows}, nil
}

// parseObjectArray builds a dataset from an array of objects. Headers come
// from the first object; later objects contribute only matching keys.
func (p *JSONParser) parseObjectArray(elements []json.RawMessage) (*tabular.Dataset, error) {
	if len(elements) == 0 {
		return &tabular.Dataset{}, nil
	}

	first := bytes.TrimSpace(elements[0])
	if len(first) == 0 || first[0] != '{' {
		return nil, errors.ParseFailure("json", fmt.Errorf("array elements must be objects"))
	}
	headers, _, err := objectEntriesInOrder(first)
	if err != nil {
		return nil, errors.ParseFailure("json", err)
	}

	rows := make([][]string, 0, len(elements))
	for _, element := range elements {
		row := make([]string, len(headers))
		var fields map[string]json.RawMessage
		// Non-object elements become all-empty rows rather than failures.
		if err := json.Unmarshal(element, &fields); err == nil {
			for i, header := range headers {
				if raw, ok := fields[header]; ok {
					row[i] = renderScalar(raw)
				}
			}
		}
		rows = append(rows, row)
	}

	return &tabular.Dataset{Headers: headers, Rows: rows}, nil
}

// objectEntriesInOrder walks a JSON object token by token, preserving the
// document order of its keys.
func objectEntriesInOrder(object []byte) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(object))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected JSON object")
	}

	var keys []string
	var values []json.RawMessage
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key")
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}
		keys = append(keys, key)
		values = append(values, value)
	}

	return keys, values, nil
}

// renderScalar converts a raw JSON value to its cell representation. Number
// literals keep their textual form, so "5.0" stays distinguishable from "5"
// for downstream type inference. Nested structures stay as compact JSON.
func renderScalar(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
		return strings.Trim(string(trimmed), `"`)
	case '{', '[':
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err == nil {
			return compact.String()
		}
		return string(trimmed)
	default:
		return string(trimmed)
	}
}
