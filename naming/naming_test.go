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

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{"default rule", "user", "users"},
		{"consonant y", "entry", "entries"},
		{"vowel y", "day", "days"},
		{"x suffix", "box", "boxes"},
		{"s suffix", "bus", "buses"},
		{"z suffix", "quiz", "quizes"},
		{"ch suffix", "match", "matches"},
		{"sh suffix", "dish", "dishes"},
		{"us suffix", "status", "statuses"},
		{"irregular", "person", "people"},
		{"irregular child", "child", "children"},
		{"already plural", "users", "users"},
		{"already plural ies", "entries", "entries"},
		{"already plural irregular", "people", "people"},
		{"kebab word", "library-entry", "library-entries"},
		{"kebab already plural", "library-entries", "library-entries"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Pluralize(tt.word))
		})
	}
}

func TestSingularize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{"default rule", "users", "user"},
		{"ies suffix", "entries", "entry"},
		{"es after x", "boxes", "box"},
		{"es after s", "buses", "bus"},
		{"es after ch", "matches", "match"},
		{"es after sh", "dishes", "dish"},
		{"irregular", "people", "person"},
		{"irregular children", "children", "child"},
		{"already singular ss", "class", "class"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Singularize(tt.word))
		})
	}
}

func TestDecamelize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{"two words", "libraryEntries", "library-entries"},
		{"single word", "users", "users"},
		{"three words", "mediaReactionVotes", "media-reaction-votes"},
		{"leading upper", "LibraryEntries", "library-entries"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Decamelize(tt.word))
		})
	}
}

func TestCamelize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{"two words", "library-entries", "libraryEntries"},
		{"single word", "users", "users"},
		{"three words", "media-reaction-votes", "mediaReactionVotes"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Camelize(tt.word))
		})
	}
}

func TestRoundTrips(t *testing.T) {
	t.Parallel()

	t.Run("case transforms are mutual inverses", func(t *testing.T) {
		t.Parallel()

		for _, word := range []string{"user", "libraryEntry", "mediaReactionVote", "anime"} {
			assert.Equal(t, word, Camelize(Decamelize(word)), "camelize(decamelize(%q))", word)
		}
		for _, word := range []string{"user", "library-entry", "media-reaction-vote"} {
			assert.Equal(t, word, Decamelize(Camelize(word)), "decamelize(camelize(%q))", word)
		}
	})

	t.Run("number transforms are mutual inverses", func(t *testing.T) {
		t.Parallel()

		for _, word := range []string{"user", "entry", "box", "bus", "match", "dish", "status", "library-entry"} {
			assert.Equal(t, word, Singularize(Pluralize(word)), "singularize(pluralize(%q))", word)
		}
	})

	t.Run("custom ruleset overrides default", func(t *testing.T) {
		t.Parallel()

		rules := &Ruleset{Irregular: map[string]string{"cactus": "cacti"}}
		assert.Equal(t, "cacti", rules.Pluralize("cactus"))
		assert.Equal(t, "cactus", rules.Singularize("cacti"))
	})
}
