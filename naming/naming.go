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
	"strings"
	"unicode"
)

// Ruleset holds the irregular-word table used by Pluralize and Singularize.
// The zero value uses no irregular words; DefaultRuleset covers common
// English irregulars. Callers may build their own Ruleset to override or
// extend the table.
//
// Example:
//
//	rules := &naming.Ruleset{Irregular: map[string]string{"medium": "media"}}
//	rules.Pluralize("medium") // "media"
type Ruleset struct {
	// Irregular maps singular words to their plural forms.
	// Both directions are derived from this single table.
	Irregular map[string]string
}

// DefaultRuleset is the ruleset used by the package-level functions.
var DefaultRuleset = &Ruleset{
	Irregular: map[string]string{
		"child":  "children",
		"datum":  "data",
		"foot":   "feet",
		"goose":  "geese",
		"man":    "men",
		"mouse":  "mice",
		"person": "people",
		"tooth":  "teeth",
		"woman":  "women",
	},
}

// Pluralize converts a singular word to its plural form using DefaultRuleset.
// Rules, in order: irregular table, trailing consonant+"y" -> "ies",
// trailing "s", "x", "z", "ch" or "sh" -> +"es", otherwise +"s".
//
// Example:
//
//	naming.Pluralize("libraryEntry") // "libraryEntries"
//	naming.Pluralize("box")          // "boxes"
//	naming.Pluralize("person")       // "people"
func Pluralize(word string) string {
	return DefaultRuleset.Pluralize(word)
}

// Singularize converts a plural word back to its singular form using
// DefaultRuleset. It is the inverse of Pluralize for words produced by it.
func Singularize(word string) string {
	return DefaultRuleset.Singularize(word)
}

// Pluralize converts a singular word to its plural form. Already-plural
// inputs are returned unchanged, so the function is idempotent: model names
// may be supplied in either number.
func (r *Ruleset) Pluralize(word string) string {
	if word == "" {
		return word
	}

	if plural, ok := r.Irregular[strings.ToLower(word)]; ok {
		return plural
	}

	if r.isPlural(word) {
		return word
	}

	if n := len(word); n >= 2 && hasSuffixFold(word, "y") && !isVowel(rune(word[n-2])) {
		return word[:n-1] + "ies"
	}

	if hasAnySuffix(word, "s", "x", "z", "ch", "sh") {
		return word + "es"
	}

	return word + "s"
}

// isPlural reports whether the word already looks like a plural form:
// an irregular plural, an "-ies" ending, or a trailing "s" that is not part
// of an "ss", "us" or "is" ending.
func (r *Ruleset) isPlural(word string) bool {
	for _, plural := range r.Irregular {
		if strings.EqualFold(word, plural) {
			return true
		}
	}

	if hasSuffixFold(word, "ies") && len(word) > 3 {
		return true
	}

	return hasSuffixFold(word, "s") && !hasAnySuffix(word, "ss", "us", "is")
}

// Singularize converts a plural word back to its singular form.
func (r *Ruleset) Singularize(word string) string {
	if word == "" {
		return word
	}

	for singular, plural := range r.Irregular {
		if strings.EqualFold(word, plural) {
			return singular
		}
	}

	if hasSuffixFold(word, "ies") && len(word) > 3 {
		return word[:len(word)-3] + "y"
	}

	if hasSuffixFold(word, "es") && len(word) > 2 {
		stem := word[:len(word)-2]
		if hasAnySuffix(stem, "s", "x", "z", "ch", "sh") {
			return stem
		}
	}

	if hasSuffixFold(word, "s") && !hasSuffixFold(word, "ss") {
		return word[:len(word)-1]
	}

	return word
}

// Decamelize converts a camel-case identifier to its hyphenated wire form,
// lower-casing throughout.
//
// Example:
//
//	naming.Decamelize("libraryEntries") // "library-entries"
func Decamelize(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Camelize converts a hyphenated wire identifier back to camel case.
// It is the inverse of Decamelize for ASCII identifiers.
//
// Example:
//
//	naming.Camelize("library-entries") // "libraryEntries"
func Camelize(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	upperNext := false
	for _, r := range name {
		if r == '-' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// isVowel reports whether the rune is an ASCII vowel, case-insensitively.
func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}

	return false
}

// hasSuffixFold reports whether s ends with suffix, case-insensitively.
func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// hasAnySuffix reports whether s ends with any of the suffixes,
// case-insensitively.
func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if hasSuffixFold(s, suffix) {
			return true
		}
	}

	return false
}
