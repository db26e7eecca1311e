// Package giftgen produces gift idea lists: a keyword-driven template
// generator, a curated offline pool and an optional hosted-model producer.
package giftgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Idea is a single gift suggestion.
type Idea struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Why          string   `json:"why"`
	PriceHintKZT string   `json:"price_hint_kzt"`
	Tags         []string `json:"tags"`
}

// Meta describes how a result was produced.
type Meta struct {
	Source   string `json:"source"`
	Model    string `json:"model"`
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}

// Result is the generate/offline response body.
type Result struct {
	Ideas []Idea `json:"ideas"`
	Meta  Meta   `json:"meta"`
}

// ValidationError names the offending field so the handler can return a
// message without string matching.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Occasions accepted by Validate.
var validOccasions = map[string]bool{
	"Birthday":    true,
	"Anniversary": true,
	"New Year":    true,
	"Graduation":  true,
	"Other":       true,
}

var validGenders = map[string]bool{
	"Female": true,
	"Male":   true,
	"Other":  true,
}

// Request is a gift idea request. Budget is in tenge.
type Request struct {
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Occasion  string `json:"occasion"`
	Budget    int    `json:"budget"`
	Interests string `json:"interests"`
	Lang      string `json:"lang"`
}

// Validate checks every field and reports the first violation.
func (r *Request) Validate() error {
	if r.Age < 1 || r.Age > 120 {
		return &ValidationError{Field: "age", Message: "age must be between 1 and 120"}
	}
	if !validGenders[r.Gender] {
		return &ValidationError{Field: "gender", Message: "gender must be Female, Male, or Other"}
	}
	if !validOccasions[r.Occasion] {
		return &ValidationError{Field: "occasion", Message: "occasion must be Birthday, Anniversary, New Year, Graduation, or Other"}
	}
	if r.Budget < 0 {
		return &ValidationError{Field: "budget", Message: "budget must be a positive number"}
	}
	if strings.TrimSpace(r.Interests) == "" {
		return &ValidationError{Field: "interests", Message: "interests cannot be empty"}
	}
	if r.Lang != "ru" && r.Lang != "en" {
		return &ValidationError{Field: "lang", Message: "language must be ru or en"}
	}
	return nil
}

// CacheKey is the canonical serialization of the semantically relevant
// fields. Struct fields marshal in declaration order, so identical logical
// requests always produce the same key; timestamps and caller identity never
// enter it.
func (r *Request) CacheKey() string {
	data, err := json.Marshal(r)
	if err != nil {
		// Request is a flat struct of scalars; Marshal cannot fail on it.
		return fmt.Sprintf("%+v", *r)
	}
	return string(data)
}

// Locale maps the language selection to the response locale.
func Locale(lang string) string {
	if lang == "ru" {
		return "ru-KZ"
	}
	return "en-KZ"
}

// Producer generates ideas from a validated request.
type Producer interface {
	Generate(ctx context.Context, req Request) (Result, error)
}
