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

import "rivaas.dev/jsonapi/naming"

// Options configures serialisation and deserialisation behaviour.
//
// Options are applied per-call via functional options. Option functions are
// safe to reuse across goroutines; each call builds a fresh Options instance.
type Options struct {
	pluralize     bool
	decamelize    bool
	camelizeKeys  bool
	retainType    bool
	collection    bool
	resourceType  string
	relationships map[string]bool
	rules         *naming.Ruleset
}

// Option configures transformer behaviour.
type Option func(*Options)

// WithoutPluralization disables model-name pluralisation when deriving the
// wire resource type. The default is enabled.
//
// Example:
//
//	jsonapi.Serialize("anime", body, http.MethodPost,
//		jsonapi.WithoutPluralization())
func WithoutPluralization() Option {
	return func(o *Options) {
		o.pluralize = false
	}
}

// WithoutDecamelization disables kebab-casing of the model name when deriving
// the wire resource type. The default is enabled.
func WithoutDecamelization() Option {
	return func(o *Options) {
		o.decamelize = false
	}
}

// WithResourceType overrides the derived wire resource type entirely.
//
// Example:
//
//	jsonapi.Serialize("libraryEntry", body, http.MethodPost,
//		jsonapi.WithResourceType("library-entries"))
func WithResourceType(resourceType string) Option {
	return func(o *Options) {
		o.resourceType = resourceType
	}
}

// WithTypeRetained keeps the wire type on deserialised objects. By default
// the type member is dropped and only id plus attributes survive.
func WithTypeRetained() Option {
	return func(o *Options) {
		o.retainType = true
	}
}

// WithCamelization converts kebab-cased attribute and relationship keys to
// camel case on deserialised objects. By default keys are copied verbatim.
func WithCamelization() Option {
	return func(o *Options) {
		o.camelizeKeys = true
	}
}

// WithCollection marks the document as the result of a to-many request, so
// null primary data deserialises to an empty ordered list instead of nil.
// Documents whose data member is an array are detected without this hint.
func WithCollection() Option {
	return func(o *Options) {
		o.collection = true
	}
}

// WithRelationships registers body keys that always serialise as
// relationships. Registered keys remove the shape ambiguity of the id+type
// duck check: a registered key whose value lacks identifier shape fails with
// a [ValidationError] instead of leaking into attributes.
//
// Example:
//
//	jsonapi.Serialize("posts", body, http.MethodPost,
//		jsonapi.WithRelationships("author", "comments"))
func WithRelationships(names ...string) Option {
	return func(o *Options) {
		if o.relationships == nil {
			o.relationships = make(map[string]bool, len(names))
		}
		for _, name := range names {
			o.relationships[name] = true
		}
	}
}

// WithRuleset replaces the pluralisation ruleset, overriding the
// irregular-word table.
func WithRuleset(rules *naming.Ruleset) Option {
	return func(o *Options) {
		if rules != nil {
			o.rules = rules
		}
	}
}

// defaultOptions returns default transformer options: both name transforms
// enabled, keys copied verbatim, type dropped.
func defaultOptions() *Options {
	return &Options{
		pluralize:  true,
		decamelize: true,
		rules:      naming.DefaultRuleset,
	}
}

// applyOptions applies options to default options.
func applyOptions(opts []Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// resourceTypeFor derives the wire resource type for a model name according
// to the configured transforms.
func (o *Options) resourceTypeFor(model string) string {
	if o.resourceType != "" {
		return o.resourceType
	}

	name := model
	if o.decamelize {
		name = naming.Decamelize(name)
	}
	if o.pluralize {
		name = o.rules.Pluralize(name)
	}

	return name
}

// outputKey maps a wire attribute or relationship key to its deserialised
// form.
func (o *Options) outputKey(key string) string {
	if o.camelizeKeys {
		return naming.Camelize(key)
	}

	return key
}

// ResourceType returns the wire resource type for a model name: by default
// the pluralised, kebab-cased form, subject to the same options as
// [Serialize].
//
// Example:
//
//	jsonapi.ResourceType("libraryEntries") // "library-entries"
func ResourceType(model string, opts ...Option) string {
	return applyOptions(opts).resourceTypeFor(model)
}
