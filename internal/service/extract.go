package service

import (
	"encoding/json"
	"errors"
	"strings"
)

// Shape is the expected top-level JSON shape of a model response
type Shape int

const (
	ShapeObject Shape = iota
	ShapeArray
)

func (s Shape) String() string {
	if s == ShapeArray {
		return "array"
	}
	return "object"
}

// JSONExtractor locates and parses the first JSON value embedded in
// arbitrary model output. It scans by delimiter depth rather than slicing
// between the first and last brace, which breaks whenever the model appends
// prose containing braces after the JSON block.
type JSONExtractor struct{}

// Extract finds the first balanced JSON region of the expected shape in raw
// and unmarshals it into v. Array-shaped responses sometimes degrade to a
// single bare object; that object is wrapped into a one-element array.
func (x *JSONExtractor) Extract(raw string, shape Shape, v any) error {
	opener := "{"
	wrap := false

	if shape == ShapeArray {
		opener = "["
		if !strings.Contains(raw, "[") || (strings.Contains(raw, "{") && strings.Index(raw, "{") < strings.Index(raw, "[")) {
			opener = "{"
			wrap = true
		}
	}

	start := strings.Index(raw, opener)
	if start == -1 {
		return &ExtractionError{Shape: shape}
	}

	depth := 0
	end := -1
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
		if end != -1 {
			break
		}
	}

	if end == -1 {
		return &MalformedJSONError{Raw: raw, Err: errors.New("unbalanced JSON delimiters")}
	}

	region := raw[start:end]
	if wrap {
		region = "[" + region + "]"
	}

	if err := json.Unmarshal([]byte(region), v); err != nil {
		return &MalformedJSONError{Raw: raw, Err: err}
	}

	return nil
}
