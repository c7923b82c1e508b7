// util/json.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DuplicateJSONKey records an object key that appears more than once.
type DuplicateJSONKey struct {
	Path string // dotted path to the enclosing object, e.g. "Presets.Dot"
	Key  string
}

// FindDuplicateJSONKeys walks the JSON tokens in data and reports every
// key that repeats within a single object. Malformed input stops the walk
// and returns what was found up to that point.
func FindDuplicateJSONKeys(data []byte) []DuplicateJSONKey {
	dec := json.NewDecoder(bytes.NewReader(data))
	var dups []DuplicateJSONKey
	walkJSONValue(dec, nil, &dups)
	return dups
}

// walkJSONValue consumes one value from dec. It returns false once the
// token stream ends or fails.
func walkJSONValue(dec *json.Decoder, path []string, dups *[]DuplicateJSONKey) bool {
	tok, err := dec.Token()
	if err != nil {
		return false
	}

	switch tok {
	case json.Delim('{'):
		seen := make(map[string]bool)
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return false
			}
			key, _ := kt.(string)
			if seen[key] {
				*dups = append(*dups, DuplicateJSONKey{Path: strings.Join(path, "."), Key: key})
			}
			seen[key] = true
			if !walkJSONValue(dec, append(path, key), dups) {
				return false
			}
		}
		_, err := dec.Token() // '}'
		return err == nil

	case json.Delim('['):
		for dec.More() {
			if !walkJSONValue(dec, path, dups) {
				return false
			}
		}
		_, err := dec.Token() // ']'
		return err == nil
	}
	return true
}

// UnmarshalJSONBytes unmarshals b into out. Syntax and type errors are
// reported with the line and character where decoding failed, and keys
// that appear twice in an object are treated as errors since one of the
// values would otherwise be silently dropped.
func UnmarshalJSONBytes[T any](b []byte, out *T) error {
	if err := json.Unmarshal(b, out); err != nil {
		var serr *json.SyntaxError
		var terr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &serr):
			line, char := jsonOffsetPosition(b, serr.Offset)
			return fmt.Errorf("line %d, character %d: %w", line, char, err)
		case errors.As(err, &terr):
			line, char := jsonOffsetPosition(b, terr.Offset)
			return fmt.Errorf("line %d, character %d: %s value for %q invalid for type %s: %w",
				line, char, terr.Value, terr.Field, terr.Type, err)
		default:
			return err
		}
	}

	if dups := FindDuplicateJSONKeys(b); len(dups) > 0 {
		var s []string
		for _, d := range dups {
			s = append(s, strings.TrimPrefix(d.Path+"."+d.Key, "."))
		}
		return fmt.Errorf("duplicate keys: %s", strings.Join(s, ", "))
	}
	return nil
}

func jsonOffsetPosition(b []byte, offset int64) (line, char int) {
	line, char = 1, 1
	for i := 0; i < int(offset) && i < len(b); i++ {
		if b[i] == '\n' {
			line++
			char = 1
		} else {
			char++
		}
	}
	return
}
