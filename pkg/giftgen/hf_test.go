package giftgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hfIdeasPayload(count int) string {
	ideas := make([]Idea, count)
	for i := range ideas {
		ideas[i] = Idea{
			Title:        fmt.Sprintf("Idea %d", i+1),
			Description:  "Something thoughtful.",
			Why:          "It fits.",
			PriceHintKZT: "10000–15000",
			Tags:         []string{"gift"},
		}
	}
	blob, _ := json.Marshal(Result{Ideas: ideas})
	return string(blob)
}

func newHFProducerForTest(t *testing.T, handler http.HandlerFunc) *HFProducer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p := NewHFProducer("test-key", "test-model", 5*time.Second)
	p.Endpoint = server.URL + "/"
	return p
}

func TestHFGenerate(t *testing.T) {
	p := newHFProducerForTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/test-model", r.URL.Path)

		generated := "Here you go:\n" + hfIdeasPayload(5)
		json.NewEncoder(w).Encode([]hfResponseItem{{GeneratedText: generated}})
	})

	result, err := p.Generate(context.Background(), Request{
		Age: 30, Gender: "Female", Occasion: "Birthday",
		Budget: 20000, Interests: "music", Lang: "en",
	})

	require.NoError(t, err)
	assert.Len(t, result.Ideas, IdeaCount)
	assert.Equal(t, "hf", result.Meta.Source)
	assert.Equal(t, "test-model", result.Meta.Model)
	assert.Equal(t, "KZT", result.Meta.Currency)
	assert.Equal(t, "en-KZ", result.Meta.Locale)
}

func TestHFGenerateObjectResponseShape(t *testing.T) {
	p := newHFProducerForTest(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(hfResponseItem{GeneratedText: hfIdeasPayload(5)})
	})

	result, err := p.Generate(context.Background(), Request{
		Age: 30, Gender: "Female", Occasion: "Birthday",
		Budget: 20000, Interests: "music", Lang: "en",
	})

	require.NoError(t, err)
	assert.Len(t, result.Ideas, IdeaCount)
}

func TestHFGenerateTruncatesExtraIdeas(t *testing.T) {
	p := newHFProducerForTest(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]hfResponseItem{{GeneratedText: hfIdeasPayload(8)}})
	})

	result, err := p.Generate(context.Background(), Request{
		Age: 30, Gender: "Female", Occasion: "Birthday",
		Budget: 20000, Interests: "music", Lang: "en",
	})

	require.NoError(t, err)
	assert.Len(t, result.Ideas, IdeaCount)
}

func TestHFGenerateShortOutputIsError(t *testing.T) {
	p := newHFProducerForTest(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]hfResponseItem{{GeneratedText: hfIdeasPayload(3)}})
	})

	_, err := p.Generate(context.Background(), Request{
		Age: 30, Gender: "Female", Occasion: "Birthday",
		Budget: 20000, Interests: "music", Lang: "en",
	})

	assert.Error(t, err)
}

func TestHFGenerateUpstreamError(t *testing.T) {
	p := newHFProducerForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := p.Generate(context.Background(), Request{
		Age: 30, Gender: "Female", Occasion: "Birthday",
		Budget: 20000, Interests: "music", Lang: "en",
	})

	assert.Error(t, err)
}

func TestHFGenerateProseWithoutJSONIsError(t *testing.T) {
	p := newHFProducerForTest(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]hfResponseItem{{GeneratedText: "I cannot help with that."}})
	})

	_, err := p.Generate(context.Background(), Request{
		Age: 30, Gender: "Female", Occasion: "Birthday",
		Budget: 20000, Interests: "music", Lang: "en",
	})

	assert.Error(t, err)
}
