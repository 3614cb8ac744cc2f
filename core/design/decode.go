package design

import (
	"encoding/json"
	"fmt"
)

// Document is the top-level shape of an exported Figma file.
type Document struct {
	Name     string `json:"name"`
	Document *Node  `json:"document"`
}

// DecodeNode parses a single design node from JSON.
func DecodeNode(data []byte) (*Node, error) {
	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing design node: %w", err)
	}
	return &node, nil
}

// DecodeDocument parses an exported Figma file. Inputs that are a bare node
// tree rather than a full file export are accepted as well: when no document
// wrapper is present the payload is decoded as the root node directly.
func DecodeDocument(data []byte) (*Node, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil && doc.Document != nil {
		return doc.Document, nil
	}
	return DecodeNode(data)
}
