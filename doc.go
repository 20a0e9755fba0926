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

// Package jsonapi transforms between the JSON:API wire format and plain,
// application-friendly object graphs.
//
// The package is a bidirectional document transformer, not an HTTP client:
// it converts documents already received or about to be sent, and performs
// no I/O. Transport concerns (headers, authentication, retries) belong to
// the caller; the optional client subpackage provides a thin collaborator.
//
// # Deserialisation
//
// [Deserialize] turns a parsed wire document into a plain graph with every
// relationship resolved in place against the document's included pool:
//
//	doc, err := jsonapi.Parse(resp.Body)
//	result, err := jsonapi.Deserialize(doc)
//	name := result.One["name"]
//	author := result.One["author"].(map[string]any)
//
// Relationship identifiers missing from the included pool stay as minimal
// {id, type} stubs and are reported on [Result.Gaps]. Circular relationship
// graphs terminate: a resource already on the current resolution chain is
// returned as a stub. Document-level meta and links ride on the [Result] as
// side channels, never mixed into resource attributes.
//
// # Serialisation
//
// [Serialize] turns a model name, a plain body and an HTTP verb intent into
// a spec-compliant request document:
//
//	doc, err := jsonapi.Serialize("libraryEntries", map[string]any{
//	    "id":     "1",
//	    "status": "completed",
//	    "user":   map[string]any{"id": "5", "type": "users"},
//	}, http.MethodPatch)
//	body, err := json.Marshal(doc)
//
// Nested values with identifier shape become relationships; everything else
// becomes attributes. PATCH and DELETE require an id and fail with a
// [ValidationError] without one.
//
// # Naming
//
// Wire resource types are derived as pluralize(decamelize(model)) —
// "libraryEntries" becomes "library-entries". Both transforms are
// individually disableable ([WithoutPluralization],
// [WithoutDecamelization]), and the type is overridable per call
// ([WithResourceType]). The naming subpackage exposes the transforms
// directly; the query subpackage encodes nested request parameters.
//
// # Concurrency
//
// All transforms are pure, synchronous functions over their own inputs with
// no shared mutable state; they may be called concurrently from any number
// of goroutines without coordination.
package jsonapi
