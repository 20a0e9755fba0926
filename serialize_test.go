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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializePatchWithRelationship(t *testing.T) {
	t.Parallel()

	doc, err := Serialize("libraryEntries", map[string]any{
		"id":     "1",
		"status": "completed",
		"user":   map[string]any{"id": "5", "type": "users"},
	}, http.MethodPatch)
	require.NoError(t, err)

	res, ok := doc.Data.(*Resource)
	require.True(t, ok)

	assert.Equal(t, "1", res.ID)
	assert.Equal(t, "library-entries", res.Type)
	assert.Equal(t, map[string]any{"status": "completed"}, res.Attributes)

	require.Contains(t, res.Relationships, "user")
	assert.Equal(t, &ResourceIdentifier{ID: "5", Type: "users"}, res.Relationships["user"].Data)

	body, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"data": {
			"id": "1",
			"type": "library-entries",
			"attributes": {"status": "completed"},
			"relationships": {"user": {"data": {"id": "5", "type": "users"}}}
		}
	}`, string(body))
}

func TestSerializeMissingID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		verb string
	}{
		{"patch", http.MethodPatch},
		{"delete", http.MethodDelete},
		{"lowercase verb", "patch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Serialize("users", map[string]any{"name": "josh"}, tt.verb)
			assert.Nil(t, doc)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrMissingID)
			assert.Equal(t, "id", verr.Field)
			assert.Equal(t, "validation_error", verr.Code())
		})
	}
}

func TestSerializePostWithoutID(t *testing.T) {
	t.Parallel()

	doc, err := Serialize("users", map[string]any{"name": "josh"}, http.MethodPost)
	require.NoError(t, err)

	res := doc.Data.(*Resource)
	assert.Empty(t, res.ID)
	assert.Equal(t, "users", res.Type)
	assert.Equal(t, map[string]any{"name": "josh"}, res.Attributes)

	body, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": {"type": "users", "attributes": {"name": "josh"}}}`, string(body))
}

func TestSerializeNilBody(t *testing.T) {
	t.Parallel()

	doc, err := Serialize("users", nil, http.MethodPost)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrInvalidBody)
}

func TestSerializeReservedKeys(t *testing.T) {
	t.Parallel()

	doc, err := Serialize("users", map[string]any{
		"id":   "7",
		"type": "ignored",
		"name": "josh",
	}, http.MethodPatch)
	require.NoError(t, err)

	res := doc.Data.(*Resource)
	assert.Equal(t, "users", res.Type, "body type never overrides the derived wire type")
	assert.NotContains(t, res.Attributes, "id")
	assert.NotContains(t, res.Attributes, "type")
}

func TestSerializeToManyRelationshipPreservesOrder(t *testing.T) {
	t.Parallel()

	doc, err := Serialize("posts", map[string]any{
		"title": "hello",
		"comments": []any{
			map[string]any{"id": "3", "type": "comments"},
			map[string]any{"id": "1", "type": "comments"},
			map[string]any{"id": "2", "type": "comments"},
		},
	}, http.MethodPost)
	require.NoError(t, err)

	res := doc.Data.(*Resource)
	require.Contains(t, res.Relationships, "comments")

	idents, ok := res.Relationships["comments"].Data.([]*ResourceIdentifier)
	require.True(t, ok)
	require.Len(t, idents, 3)
	assert.Equal(t, "3", idents[0].ID)
	assert.Equal(t, "1", idents[1].ID)
	assert.Equal(t, "2", idents[2].ID)
}

func TestSerializeAttributePartitioning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		value     any
		attribute bool
	}{
		{"scalar string", "status", "completed", true},
		{"scalar number", "progress", 25, true},
		{"array of scalars", "tags", []any{"a", "b"}, true},
		{"object without id", "settings", map[string]any{"theme": "dark"}, true},
		{"object with id only", "partial", map[string]any{"id": "1"}, true},
		{"identifier shape", "user", map[string]any{"id": "5", "type": "users"}, false},
		{"array of identifiers", "users", []any{map[string]any{"id": "5", "type": "users"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Serialize("things", map[string]any{tt.key: tt.value}, http.MethodPost)
			require.NoError(t, err)

			res := doc.Data.(*Resource)
			if tt.attribute {
				assert.Contains(t, res.Attributes, tt.key)
				assert.NotContains(t, res.Relationships, tt.key)
			} else {
				assert.Contains(t, res.Relationships, tt.key)
				assert.NotContains(t, res.Attributes, tt.key)
			}
		})
	}
}

func TestSerializeRegisteredRelationships(t *testing.T) {
	t.Parallel()

	t.Run("registered key without identifier shape fails", func(t *testing.T) {
		t.Parallel()

		doc, err := Serialize("posts", map[string]any{
			"author": map[string]any{"name": "josh"},
		}, http.MethodPost, WithRelationships("author"))
		assert.Nil(t, doc)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ErrorIs(t, err, ErrBadLinkage)
		assert.Equal(t, "author", verr.Field)
	})

	t.Run("registered key with scalar value fails", func(t *testing.T) {
		t.Parallel()

		_, err := Serialize("posts", map[string]any{"author": "5"},
			http.MethodPost, WithRelationships("author"))
		assert.ErrorIs(t, err, ErrBadLinkage)
	})

	t.Run("registered nil is an empty to-one", func(t *testing.T) {
		t.Parallel()

		doc, err := Serialize("posts", map[string]any{"author": nil},
			http.MethodPost, WithRelationships("author"))
		require.NoError(t, err)

		res := doc.Data.(*Resource)
		require.Contains(t, res.Relationships, "author")
		assert.Nil(t, res.Relationships["author"].Data)

		body, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data": {"type": "posts", "relationships": {"author": {"data": null}}}}`, string(body))
	})

	t.Run("registered empty slice is an empty to-many", func(t *testing.T) {
		t.Parallel()

		doc, err := Serialize("posts", map[string]any{"comments": []any{}},
			http.MethodPost, WithRelationships("comments"))
		require.NoError(t, err)

		res := doc.Data.(*Resource)
		idents, ok := res.Relationships["comments"].Data.([]*ResourceIdentifier)
		require.True(t, ok)
		assert.Empty(t, idents)
	})

	t.Run("unregistered nil stays an attribute", func(t *testing.T) {
		t.Parallel()

		doc, err := Serialize("posts", map[string]any{"subtitle": nil}, http.MethodPost)
		require.NoError(t, err)

		res := doc.Data.(*Resource)
		assert.Contains(t, res.Attributes, "subtitle")
	})
}

func TestSerializeNamingOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		model    string
		opts     []Option
		expected string
	}{
		{"default transforms", "libraryEntry", nil, "library-entries"},
		{"already plural model", "libraryEntries", nil, "library-entries"},
		{"no pluralization", "libraryEntry", []Option{WithoutPluralization()}, "library-entry"},
		{"no decamelization", "libraryEntries", []Option{WithoutDecamelization()}, "libraryEntries"},
		{"both disabled", "libraryEntry", []Option{WithoutPluralization(), WithoutDecamelization()}, "libraryEntry"},
		{"explicit override", "libraryEntry", []Option{WithResourceType("entries")}, "entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Serialize(tt.model, map[string]any{"id": "1"}, http.MethodPatch, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.Data.(*Resource).Type)

			assert.Equal(t, tt.expected, ResourceType(tt.model, tt.opts...))
		})
	}
}

func TestSerializeDeleteCarriesIdentityOnly(t *testing.T) {
	t.Parallel()

	doc, err := Serialize("users", map[string]any{"id": "5"}, http.MethodDelete)
	require.NoError(t, err)

	body, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": {"id": "5", "type": "users"}}`, string(body))
}

func TestSerializeNumericID(t *testing.T) {
	t.Parallel()

	doc, err := Serialize("users", map[string]any{"id": 42}, http.MethodPatch)
	require.NoError(t, err)
	assert.Equal(t, "42", doc.Data.(*Resource).ID)
}
