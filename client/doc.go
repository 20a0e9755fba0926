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

// Package client is a thin HTTP collaborator for the jsonapi transforms.
//
// The client owns only plumbing: URL construction from wire resource types,
// header injection, and moving documents across the network. Every
// conversion goes through the core package, so the client adds no
// serialisation behaviour of its own. Retries, caching and pagination
// traversal are deliberately absent; callers who need them wrap the client.
//
//	api, err := client.New("https://kitsu.io/api/edge")
//	result, err := api.Get(ctx, "anime", "1",
//	    query.New().Include("genres"))
//	entry, err := api.Update(ctx, "libraryEntries", map[string]any{
//	    "id":     "1",
//	    "status": "completed",
//	})
//
// All requests take a context for cancellation and deadlines; the client
// itself imposes no concurrency model on its caller.
package client
