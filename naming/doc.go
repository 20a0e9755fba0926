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

// Package naming converts between application identifiers and JSON:API wire
// names.
//
// JSON:API resource types are plural, kebab-cased words ("library-entries"),
// while application models are usually singular or camel-cased identifiers
// ("libraryEntry"). This package provides the four pure transforms between
// the two worlds:
//
//	naming.Decamelize("libraryEntry")   // "library-entry"
//	naming.Camelize("library-entry")    // "libraryEntry"
//	naming.Pluralize("library-entry")   // "library-entries"
//	naming.Singularize("library-entries") // "library-entry"
//
// Pluralize and Singularize use a standard English rule set plus an
// irregular-word table. The table is overridable by constructing a custom
// [Ruleset]:
//
//	rules := &naming.Ruleset{Irregular: map[string]string{"cactus": "cacti"}}
//	rules.Pluralize("cactus") // "cacti"
//
// All functions are total over strings: any input is valid and no errors are
// returned. Decamelize/Camelize and Pluralize/Singularize are mutual inverses
// for ASCII identifiers outside the irregular table.
package naming
