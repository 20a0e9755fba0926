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

// Package query encodes nested JSON:API request parameters into canonical
// query strings.
//
// JSON:API servers expect filters, sparse fieldsets, pagination, sorting and
// includes in bracket notation:
//
//	filter[name]=wopian&fields[users]=name,birthday&page[limit]=10
//
// The [Params] builder preserves insertion order so that encoding the same
// parameter set twice yields byte-identical strings:
//
//	q := query.New().
//	    Filter("slug", "cowboy-bebop").
//	    Fields("anime", "titles", "slug").
//	    Page("limit", 10).
//	    Include("genres")
//	url := base + "?" + q.Encode()
//
// Arrays are comma-joined into a single value rather than repeating the key,
// and empty or nil leaves are omitted entirely. The package performs no I/O
// and holds no state between calls.
package query
