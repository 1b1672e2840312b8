// Package sanitize masks profane terms in free-form woof text before it is
// stored. Sanitizing never rejects input: text without a dictionary match
// passes through unchanged.
package sanitize

import (
	goaway "github.com/TwiN/go-away"
)

// Sanitizer rewrites recognized profanities to asterisks, one per masked
// character, so the replacement is deterministic for a given input.
type Sanitizer struct {
	detector *goaway.ProfanityDetector
}

// New builds a Sanitizer over the default dictionary, extended with any
// extra words from configuration.
func New(extraWords []string) *Sanitizer {
	detector := goaway.NewProfanityDetector()
	if len(extraWords) > 0 {
		profanities := make([]string, 0, len(goaway.DefaultProfanities)+len(extraWords))
		profanities = append(profanities, goaway.DefaultProfanities...)
		profanities = append(profanities, extraWords...)
		detector = detector.WithCustomDictionary(profanities, goaway.DefaultFalsePositives, goaway.DefaultFalseNegatives)
	}
	return &Sanitizer{detector: detector}
}

// Clean returns text with every recognized profane term masked.
func (s *Sanitizer) Clean(text string) string {
	return s.detector.Censor(text)
}
