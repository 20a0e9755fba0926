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
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeInto materialises a deserialised graph into a caller-supplied struct.
// Field mapping follows json struct tags; string timestamps decode into
// time.Time (RFC3339) and time.Duration fields.
//
// Example:
//
//	type LibraryEntry struct {
//	    ID     string `json:"id"`
//	    Status string `json:"status"`
//	}
//
//	result, _ := jsonapi.Deserialize(doc)
//	var entry LibraryEntry
//	if err := jsonapi.DecodeInto(result.One, &entry); err != nil { ... }
func DecodeInto(graph any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Squash:           true,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
		Result: out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(graph); err != nil {
		return fmt.Errorf("failed to decode resource: %w", err)
	}

	return nil
}

// Decode is the generic form of [DecodeInto].
//
// Example:
//
//	entry, err := jsonapi.Decode[LibraryEntry](result.One)
func Decode[T any](graph any) (T, error) {
	var out T
	if err := DecodeInto(graph, &out); err != nil {
		return out, err
	}

	return out, nil
}
