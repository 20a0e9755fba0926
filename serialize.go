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
	"net/http"
	"strings"

	"github.com/spf13/cast"
)

// Serialize turns a plain body into a JSON:API request document. The wire
// type is pluralize(decamelize(model)) unless overridden with
// [WithResourceType]. Body keys are partitioned: a value with identifier
// shape (a nested map carrying id and type, or an ordered slice of such
// maps) or a key registered via [WithRelationships] becomes a relationship;
// every other key becomes an attribute. The reserved keys id and type never
// appear inside attributes.
//
// PATCH and DELETE intents require the body to carry an id; its absence is a
// *ValidationError, never a silently empty payload. For PATCH only the keys
// present on the body are serialised, so unset fields are not implicitly
// nulled.
//
// Example:
//
//	doc, err := jsonapi.Serialize("libraryEntries", map[string]any{
//	    "id":     "1",
//	    "status": "completed",
//	    "user":   map[string]any{"id": "5", "type": "users"},
//	}, http.MethodPatch)
//	// {"data":{"id":"1","type":"library-entries",
//	//   "attributes":{"status":"completed"},
//	//   "relationships":{"user":{"data":{"id":"5","type":"users"}}}}}
//
// Serialize performs no I/O; the returned document is ready for direct
// transmission by the caller's transport.
func Serialize(model string, body map[string]any, verb string, opts ...Option) (*Document, error) {
	cfg := applyOptions(opts)

	if body == nil {
		return nil, &ValidationError{Model: model, Reason: "body must be a non-nil map", Err: ErrInvalidBody}
	}

	id := cast.ToString(body["id"])
	if id == "" && requiresID(verb) {
		return nil, &ValidationError{
			Model:  model,
			Field:  "id",
			Reason: strings.ToUpper(verb) + " requires the body to carry an id",
			Err:    ErrMissingID,
		}
	}

	res := &Resource{ID: id, Type: cfg.resourceTypeFor(model)}

	for key, value := range body {
		if key == "id" || key == "type" {
			continue
		}

		rel, ok, err := relationshipFor(model, key, value, cfg)
		if err != nil {
			return nil, err
		}
		if ok {
			if res.Relationships == nil {
				res.Relationships = make(map[string]*Relationship)
			}
			res.Relationships[key] = rel
			continue
		}

		if res.Attributes == nil {
			res.Attributes = make(map[string]any)
		}
		res.Attributes[key] = value
	}

	return &Document{Data: res}, nil
}

// requiresID reports whether the verb intent needs an existing resource id.
func requiresID(verb string) bool {
	return strings.EqualFold(verb, http.MethodPatch) || strings.EqualFold(verb, http.MethodDelete)
}

// relationshipFor decides whether a body value serialises as a relationship.
// Keys registered on the options always do; for them a value without
// identifier shape is a *ValidationError. Unregistered values are probed for
// identifier shape and fall back to attributes.
func relationshipFor(model, key string, value any, cfg *Options) (*Relationship, bool, error) {
	registered := cfg.relationships[key]

	switch v := value.(type) {
	case nil:
		if registered {
			// Registered key with a nil value is an explicit empty to-one.
			return &Relationship{Data: nil}, true, nil
		}
		return nil, false, nil

	case map[string]any:
		if ident, ok := identifierFrom(v); ok {
			return &Relationship{Data: ident}, true, nil
		}
		if registered {
			return nil, false, &ValidationError{
				Model:  model,
				Field:  key,
				Reason: "relationship value must carry id and type",
				Err:    ErrBadLinkage,
			}
		}
		return nil, false, nil

	case []any:
		if registered && len(v) == 0 {
			// Registered key with an empty slice is an explicit empty to-many.
			return &Relationship{Data: []*ResourceIdentifier{}}, true, nil
		}
		idents, ok := identifiersFrom(v)
		if ok {
			return &Relationship{Data: idents}, true, nil
		}
		if registered {
			return nil, false, &ValidationError{
				Model:  model,
				Field:  key,
				Reason: "relationship members must carry id and type",
				Err:    ErrBadLinkage,
			}
		}
		return nil, false, nil

	case []map[string]any:
		members := make([]any, 0, len(v))
		for _, m := range v {
			members = append(members, m)
		}
		return relationshipFor(model, key, members, cfg)

	default:
		if registered {
			return nil, false, &ValidationError{
				Model:  model,
				Field:  key,
				Reason: "relationship value must be an object or array of objects",
				Err:    ErrBadLinkage,
			}
		}
		return nil, false, nil
	}
}

// identifierFrom extracts a resource identifier from a nested map when it
// has identifier shape: non-empty id and type members.
func identifierFrom(m map[string]any) (*ResourceIdentifier, bool) {
	id := cast.ToString(m["id"])
	typ := cast.ToString(m["type"])
	if id == "" || typ == "" {
		return nil, false
	}

	return &ResourceIdentifier{ID: id, Type: typ}, true
}

// identifiersFrom extracts an ordered identifier list from a slice whose
// members all have identifier shape. Order is preserved.
func identifiersFrom(values []any) ([]*ResourceIdentifier, bool) {
	if len(values) == 0 {
		return nil, false
	}

	idents := make([]*ResourceIdentifier, 0, len(values))
	for _, value := range values {
		m, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		ident, ok := identifierFrom(m)
		if !ok {
			return nil, false
		}
		idents = append(idents, ident)
	}

	return idents, true
}
