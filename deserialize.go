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

import "sort"

// Result is the deserialised form of a document: a plain object graph with
// relationships resolved in place, plus document-level meta and links kept as
// side channels so they never pollute resource attributes.
//
// Exactly one of One and Many is populated. Collection reports which shape
// the result has; an empty to-many result is a non-nil empty Many with
// Collection true, while a null to-one result leaves One nil with Collection
// false.
type Result struct {
	One        map[string]any   // Single-resource graph, nil for null data
	Many       []map[string]any // Ordered collection of graphs
	Collection bool             // True when the result has to-many shape
	Meta       map[string]any   // Document-level meta (total counts, ...)
	Links      map[string]any   // Document-level links (pagination, ...)
	Gaps       []ResolutionGap  // Relationship identifiers missing from included
}

// HasGaps reports whether any relationship identifier could not be resolved
// against the document's included pool.
func (r *Result) HasGaps() bool {
	return len(r.Gaps) > 0
}

// Deserialize turns a wire document into a plain object graph. Attributes
// are copied verbatim, id is added, and the wire type is dropped unless
// [WithTypeRetained] is set. Each relationship is resolved against the
// document's included pool by (id, type); resolved targets are materialised
// in place, recursively, while unresolved identifiers stay as minimal
// {id, type} stubs and are reported on [Result.Gaps].
//
// Resolution is cycle-safe: a resource already being materialised in the
// current chain is returned as a stub, so circular relationship graphs
// terminate with a finite result.
//
// A nil data member yields a nil One for to-one shapes, or an empty Many for
// to-many shapes ([WithCollection] supplies the shape hint when the wire form
// is null rather than an empty array). A document carrying top-level errors
// and no data short-circuits to a *DocumentError.
//
// Example:
//
//	result, err := jsonapi.Deserialize(doc)
//	if err != nil {
//	    var docErr *jsonapi.DocumentError
//	    if errors.As(err, &docErr) {
//	        // inspect docErr.Errors
//	    }
//	}
func Deserialize(doc *Document, opts ...Option) (*Result, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if len(doc.Errors) > 0 && doc.Data == nil {
		return nil, &DocumentError{Errors: doc.Errors}
	}

	cfg := applyOptions(opts)
	d := &deserializer{
		cfg:      cfg,
		included: indexIncluded(doc.Included),
	}

	result := &Result{Meta: doc.Meta, Links: doc.Links}

	switch data := doc.Data.(type) {
	case []*Resource:
		result.Collection = true
		result.Many = make([]map[string]any, 0, len(data))
		for _, res := range data {
			result.Many = append(result.Many, d.materialize(res, "", make(map[refKey]bool)))
		}
	case *Resource:
		result.One = d.materialize(data, "", make(map[refKey]bool))
	default:
		if cfg.collection || doc.many {
			result.Collection = true
			result.Many = []map[string]any{}
		}
	}

	sort.Slice(d.gaps, func(i, j int) bool {
		a, b := d.gaps[i], d.gaps[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.ID < b.ID
	})
	result.Gaps = d.gaps

	return result, nil
}

// refKey is the (id, type) pair that identifies a resource on the wire.
type refKey struct {
	id  string
	typ string
}

// deserializer carries per-call resolution state. A fresh instance is built
// for every Deserialize call; nothing is shared between calls.
type deserializer struct {
	cfg      *Options
	included map[refKey]*Resource
	gaps     []ResolutionGap
}

// indexIncluded builds the (id, type) index over the included pool. When two
// included resources share an (id, type) pair, the first occurrence wins;
// duplicates are never merged.
func indexIncluded(included []*Resource) map[refKey]*Resource {
	index := make(map[refKey]*Resource, len(included))
	for _, res := range included {
		key := refKey{id: res.ID, typ: res.Type}
		if _, ok := index[key]; !ok {
			index[key] = res
		}
	}

	return index
}

// materialize builds the plain object for one resource. The seen set holds
// the (id, type) pairs of the current resolution chain; it bounds recursion
// depth on cyclic graphs.
func (d *deserializer) materialize(res *Resource, path string, seen map[refKey]bool) map[string]any {
	key := refKey{id: res.ID, typ: res.Type}
	seen[key] = true
	defer delete(seen, key)

	out := make(map[string]any, len(res.Attributes)+len(res.Relationships)+2)
	for name, value := range res.Attributes {
		out[d.cfg.outputKey(name)] = value
	}

	out["id"] = res.ID
	if d.cfg.retainType {
		out["type"] = res.Type
	}

	for name, rel := range res.Relationships {
		relPath := joinPath(path, name)

		switch linkage := rel.Data.(type) {
		case *ResourceIdentifier:
			out[d.cfg.outputKey(name)] = d.resolve(linkage, relPath, seen)
		case []*ResourceIdentifier:
			many := make([]map[string]any, 0, len(linkage))
			for _, ident := range linkage {
				many = append(many, d.resolve(ident, relPath, seen))
			}
			out[d.cfg.outputKey(name)] = many
		default:
			out[d.cfg.outputKey(name)] = nil
		}
	}

	return out
}

// resolve dereferences one relationship identifier against the included
// pool. Identifiers missing from the pool are recorded as gaps and reduced
// to stubs; identifiers already on the current resolution chain are reduced
// to stubs without a gap, breaking the cycle.
func (d *deserializer) resolve(ident *ResourceIdentifier, path string, seen map[refKey]bool) map[string]any {
	key := refKey{id: ident.ID, typ: ident.Type}

	target, ok := d.included[key]
	if !ok {
		d.gaps = append(d.gaps, ResolutionGap{ID: ident.ID, Type: ident.Type, Path: path})
		return stub(ident.ID, ident.Type)
	}

	if seen[key] {
		return stub(ident.ID, ident.Type)
	}

	return d.materialize(target, path, seen)
}

// stub is the minimal {id, type} placeholder for an unresolved resource.
func stub(id, typ string) map[string]any {
	return map[string]any{"id": id, "type": typ}
}

// joinPath appends a relationship name to a dot-separated path.
func joinPath(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}
