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

package query

import (
	"net/url"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Params is an ordered collection of query parameters. Unlike a Go map, it
// preserves insertion order, so the encoded string is deterministic and
// reproducible for caching and testing.
//
// Values may be:
//   - scalars (string, bool, numeric types): encoded as a single key=value pair
//   - *Params: encoded as bracketed nested keys (parent[child]=value)
//   - map[string]any: like *Params, with keys sorted for determinism
//   - slices ([]string, []any, ...): members comma-joined into one value
//
// Nil and empty-string values are omitted from the encoded output.
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value any
}

// New returns an empty parameter set.
func New() *Params {
	return &Params{}
}

// Set appends a key with the given value, returning the receiver for
// chaining. Setting the same key twice appends a second pair; JSON:API
// servers treat repeated keys positionally.
func (p *Params) Set(key string, value any) *Params {
	p.pairs = append(p.pairs, pair{key: key, value: value})
	return p
}

// Filter adds a filter[name]=value parameter.
//
// Example:
//
//	query.New().Filter("name", "wopian")
func (p *Params) Filter(name string, value any) *Params {
	return p.nested("filter", name, value)
}

// Fields adds a sparse fieldset for a resource type:
// fields[resource]=a,b,c.
func (p *Params) Fields(resource string, fields ...string) *Params {
	return p.nested("fields", resource, strings.Join(fields, ","))
}

// Page adds a page[key]=value parameter (offset, limit, number, size, ...).
func (p *Params) Page(key string, value any) *Params {
	return p.nested("page", key, value)
}

// Sort adds a sort parameter; multiple fields are comma-joined. Prefix a
// field with "-" for descending order.
func (p *Params) Sort(fields ...string) *Params {
	return p.Set("sort", strings.Join(fields, ","))
}

// Include adds an include parameter listing relationship paths to return as
// a compound document.
func (p *Params) Include(relationships ...string) *Params {
	return p.Set("include", strings.Join(relationships, ","))
}

// Len returns the number of top-level parameters.
func (p *Params) Len() int {
	return len(p.pairs)
}

// nested appends value under parent[child], reusing an existing parent
// *Params group when one was already started so related keys stay adjacent.
func (p *Params) nested(parent, child string, value any) *Params {
	for _, pr := range p.pairs {
		if pr.key != parent {
			continue
		}
		if group, ok := pr.value.(*Params); ok {
			group.Set(child, value)
			return p
		}
	}

	return p.Set(parent, New().Set(child, value))
}

// Encode flattens the parameter set into a canonical query string without a
// leading "?". Keys follow insertion order; nested structures use bracket
// notation; array members are comma-joined into a single value. Empty and
// nil leaves are omitted entirely.
//
// Example:
//
//	q := query.New().
//	    Fields("users", "name", "birthday").
//	    Filter("name", "wopian")
//	q.Encode() // "fields%5Busers%5D=name%2Cbirthday&filter%5Bname%5D=wopian"
func (p *Params) Encode() string {
	if p == nil || len(p.pairs) == 0 {
		return ""
	}

	var out []string
	for _, pr := range p.pairs {
		out = appendEncoded(out, pr.key, pr.value)
	}

	return strings.Join(out, "&")
}

// Encode flattens a plain nested map into a canonical query string. Because
// Go maps carry no insertion order, keys are encoded in sorted order at each
// level. Use [Params] when the caller needs to control ordering.
func Encode(params map[string]any) string {
	var out []string
	for _, key := range sortedKeys(params) {
		out = appendEncoded(out, key, params[key])
	}

	return strings.Join(out, "&")
}

// appendEncoded recursively flattens one key/value into encoded pairs.
func appendEncoded(out []string, key string, value any) []string {
	switch v := value.(type) {
	case nil:
		return out
	case *Params:
		if v == nil {
			return out
		}
		for _, pr := range v.pairs {
			out = appendEncoded(out, key+"["+pr.key+"]", pr.value)
		}
		return out
	case map[string]any:
		for _, child := range sortedKeys(v) {
			out = appendEncoded(out, key+"["+child+"]", v[child])
		}
		return out
	case []string:
		return appendScalar(out, key, strings.Join(v, ","))
	case []any:
		members := make([]string, 0, len(v))
		for _, m := range v {
			members = append(members, cast.ToString(m))
		}
		return appendScalar(out, key, strings.Join(members, ","))
	default:
		return appendScalar(out, key, cast.ToString(v))
	}
}

// appendScalar encodes a single key=value pair, omitting empty values.
func appendScalar(out []string, key, value string) []string {
	if value == "" {
		return out
	}

	return append(out, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

// sortedKeys returns the map's keys in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
