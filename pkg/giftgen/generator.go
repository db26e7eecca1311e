package giftgen

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"
)

// IdeaCount is the fixed size of every idea list.
const IdeaCount = 5

// Budget tier thresholds in tenge, mapped to the four price hints.
const (
	tierLowMax  = 5000
	tierMidMax  = 15000
	tierHighMax = 40000
)

// PriceHintForBudget buckets the declared budget into one of four tiers. The
// hint replaces whatever a template would say, so price hints never
// contradict the requester's budget.
func PriceHintForBudget(budget int) string {
	switch {
	case budget < tierLowMax:
		return "1000–5000"
	case budget < tierMidMax:
		return "5000–15000"
	case budget < tierHighMax:
		return "15000–40000"
	default:
		return "40000+"
	}
}

// Classify returns the categories whose keywords appear in the free-text
// interests. Tokens are lowercased words; a request may match several
// categories or none.
func Classify(interests string) []string {
	tokens := map[string]bool{}
	for _, tok := range strings.FieldsFunc(strings.ToLower(interests), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokens[tok] = true
	}

	var matched []string
	for _, category := range allCategories {
		for _, keyword := range categoryKeywords[category] {
			if tokens[keyword] {
				matched = append(matched, category)
				break
			}
		}
	}
	return matched
}

// TemplateProducer draws ideas from the built-in template pools.
type TemplateProducer struct {
	Model string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewTemplateProducer seeds the producer from the clock.
func NewTemplateProducer() *TemplateProducer {
	return NewTemplateProducerWithSeed(time.Now().UnixNano())
}

// NewTemplateProducerWithSeed builds a deterministic producer for tests.
func NewTemplateProducerWithSeed(seed int64) *TemplateProducer {
	return &TemplateProducer{
		Model: "template-v1",
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Generate returns exactly IdeaCount ideas. Templates are drawn without
// replacement (identity is category+title) from the eligible categories; if
// the unique pool runs dry the remaining slots are filled with uniformly
// random templates, repeats allowed.
func (p *TemplateProducer) Generate(_ context.Context, req Request) (Result, error) {
	pool, ok := templatePools[req.Lang]
	if !ok {
		pool = templatePools["en"]
	}

	categories := Classify(req.Interests)
	if len(categories) == 0 {
		categories = allCategories
	}

	totalUnique := 0
	for _, category := range categories {
		totalUnique += len(pool[category])
	}

	priceHint := PriceHintForBudget(req.Budget)

	p.mu.Lock()
	defer p.mu.Unlock()

	used := map[string]bool{}
	ideas := make([]Idea, 0, IdeaCount)
	for len(ideas) < IdeaCount && len(used) < totalUnique {
		category := categories[p.rng.Intn(len(categories))]
		templates := pool[category]
		tpl := templates[p.rng.Intn(len(templates))]
		key := category + "|" + tpl.Title
		if used[key] {
			continue
		}
		used[key] = true
		ideas = append(ideas, ideaFromTemplate(tpl, priceHint))
	}

	for len(ideas) < IdeaCount {
		category := categories[p.rng.Intn(len(categories))]
		templates := pool[category]
		tpl := templates[p.rng.Intn(len(templates))]
		ideas = append(ideas, ideaFromTemplate(tpl, priceHint))
	}

	return Result{
		Ideas: ideas,
		Meta: Meta{
			Source:   "template",
			Model:    p.Model,
			Currency: "KZT",
			Locale:   Locale(req.Lang),
		},
	}, nil
}

func ideaFromTemplate(tpl Template, priceHint string) Idea {
	tags := make([]string, len(tpl.Tags))
	copy(tags, tpl.Tags)
	return Idea{
		Title:        tpl.Title,
		Description:  tpl.Description,
		Why:          tpl.Why,
		PriceHintKZT: priceHint,
		Tags:         tags,
	}
}

var _ Producer = (*TemplateProducer)(nil)
