// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsonapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// MediaType is the JSON:API content type for request and response bodies.
const MediaType = "application/vnd.api+json"

// ResourceIdentifier uniquely identifies a resource on the wire. It never
// carries attributes; Type is always the pluralised, kebab-cased wire name.
type ResourceIdentifier struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Resource is one full resource object as received or about to be sent.
type Resource struct {
	ID            string                   `json:"id,omitempty"`
	Type          string                   `json:"type"`
	Attributes    map[string]any           `json:"attributes,omitempty"`
	Relationships map[string]*Relationship `json:"relationships,omitempty"`
	Links         map[string]any           `json:"links,omitempty"`
	Meta          map[string]any           `json:"meta,omitempty"`
}

// Relationship is the linkage between a resource and its related resources.
// Data holds a *ResourceIdentifier for a to-one relationship, a
// []*ResourceIdentifier for to-many, or nil for an empty to-one. A
// Relationship is owned by exactly one Resource and never shared.
type Relationship struct {
	Data  any
	Links map[string]any
	Meta  map[string]any
}

// MarshalJSON always emits the data member, including an explicit null for
// an empty to-one relationship, as the wire format requires.
func (r *Relationship) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Data  any            `json:"data"`
		Links map[string]any `json:"links,omitempty"`
		Meta  map[string]any `json:"meta,omitempty"`
	}{Data: r.Data, Links: r.Links, Meta: r.Meta})
}

// UnmarshalJSON decodes the data member into its one/many/null linkage form.
func (r *Relationship) UnmarshalJSON(data []byte) error {
	var raw struct {
		Data  json.RawMessage `json:"data"`
		Links map[string]any  `json:"links"`
		Meta  map[string]any  `json:"meta"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode relationship: %w", err)
	}

	r.Links = raw.Links
	r.Meta = raw.Meta

	linkage, err := decodeLinkage(raw.Data)
	if err != nil {
		return err
	}
	r.Data = linkage

	return nil
}

// decodeLinkage parses relationship data into nil, one identifier or an
// ordered list of identifiers.
func decodeLinkage(raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		var many []*ResourceIdentifier
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil, fmt.Errorf("failed to decode to-many linkage: %w", err)
		}
		return many, nil
	}

	var one ResourceIdentifier
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("failed to decode to-one linkage: %w", err)
	}

	return &one, nil
}

// Document is a top-level JSON:API document. Data holds a *Resource for
// single-resource documents, a []*Resource for collections, or nil.
// Included is a flat pool of related resources cross-referenced by (id, type)
// pairs from relationship linkage in Data.
//
// A Document is constructed fresh per request or response and never retained
// across calls; the transformer holds no document cache.
type Document struct {
	Data     any            `json:"data"`
	Included []*Resource    `json:"included,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
	Links    map[string]any `json:"links,omitempty"`
	Errors   []*ErrorObject `json:"errors,omitempty"`

	// many records whether the wire data member was an array, so that an
	// empty collection keeps its to-many shape through deserialisation.
	many bool
}

// IsCollection reports whether the document's data member was an array on
// the wire.
func (d *Document) IsCollection() bool {
	return d.many
}

// UnmarshalJSON decodes a wire document, distinguishing single-resource,
// collection and null primary data.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Data     json.RawMessage `json:"data"`
		Included []*Resource     `json:"included"`
		Meta     map[string]any  `json:"meta"`
		Links    map[string]any  `json:"links"`
		Errors   []*ErrorObject  `json:"errors"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	d.Included = raw.Included
	d.Meta = raw.Meta
	d.Links = raw.Links
	d.Errors = raw.Errors
	d.Data = nil
	d.many = false

	if isNull(raw.Data) {
		return nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(raw.Data), []byte("[")) {
		var many []*Resource
		if err := json.Unmarshal(raw.Data, &many); err != nil {
			return fmt.Errorf("failed to decode primary data: %w", err)
		}
		d.Data = many
		d.many = true

		return nil
	}

	var one Resource
	if err := json.Unmarshal(raw.Data, &one); err != nil {
		return fmt.Errorf("failed to decode primary data: %w", err)
	}
	d.Data = &one

	return nil
}

// Parse reads and decodes a wire document from r.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// isNull reports whether raw is absent or a JSON null.
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
