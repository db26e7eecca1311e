package giftgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const defaultHFEndpoint = "https://api-inference.huggingface.co/models/"

// HFProducer generates ideas through the Hugging Face inference API. Any
// failure (network, timeout, unparsable output) is returned as an error; the
// caller is expected to degrade to the offline pool.
type HFProducer struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration

	client *http.Client
}

func NewHFProducer(apiKey, model string, timeout time.Duration) *HFProducer {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &HFProducer{
		APIKey:   apiKey,
		Model:    model,
		Endpoint: defaultHFEndpoint,
		Timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
	}
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfResponseItem struct {
	GeneratedText string `json:"generated_text"`
}

var jsonBlob = regexp.MustCompile(`(?s)\{.*\}`)

func (p *HFProducer) Generate(ctx context.Context, req Request) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	body, err := json.Marshal(hfRequest{
		Inputs: p.prompt(req),
		Parameters: hfParameters{
			MaxNewTokens:   512,
			Temperature:    0.8,
			TopP:           0.95,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return Result{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint+p.Model, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("hf api error: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	text, err := extractGeneratedText(raw)
	if err != nil {
		return Result{}, err
	}

	result, err := parseIdeaJSON(text)
	if err != nil {
		return Result{}, err
	}

	// The caller guarantees exactly IdeaCount ideas; short output is a
	// failure and falls through to the offline pool.
	if len(result.Ideas) < IdeaCount {
		return Result{}, fmt.Errorf("model produced %d ideas, want %d", len(result.Ideas), IdeaCount)
	}
	result.Ideas = result.Ideas[:IdeaCount]
	result.Meta = Meta{
		Source:   "hf",
		Model:    p.Model,
		Currency: "KZT",
		Locale:   Locale(req.Lang),
	}
	return result, nil
}

// extractGeneratedText handles both response shapes the API produces: an
// array of items and a single object.
func extractGeneratedText(raw []byte) (string, error) {
	var items []hfResponseItem
	if err := json.Unmarshal(raw, &items); err == nil && len(items) > 0 && items[0].GeneratedText != "" {
		return items[0].GeneratedText, nil
	}
	var item hfResponseItem
	if err := json.Unmarshal(raw, &item); err == nil && item.GeneratedText != "" {
		return item.GeneratedText, nil
	}
	return "", errors.New("hf response contains no generated text")
}

// parseIdeaJSON pulls the first {...} blob out of the model output and
// decodes it. Model output routinely wraps JSON in prose, so the match is
// deliberately greedy.
func parseIdeaJSON(text string) (Result, error) {
	blob := jsonBlob.FindString(text)
	if blob == "" {
		return Result{}, errors.New("no JSON object in generated text")
	}
	var result Result
	if err := json.Unmarshal([]byte(blob), &result); err != nil {
		return Result{}, err
	}
	if len(result.Ideas) == 0 {
		return Result{}, errors.New("generated JSON contains no ideas")
	}
	return result, nil
}

func (p *HFProducer) prompt(req Request) string {
	language := "English"
	if req.Lang == "ru" {
		language = "Russian"
	}
	return fmt.Sprintf(`SYSTEM:
You are "GiftMaster", an expert gift recommendation assistant.
Always answer in VALID JSON only; do not include any extra text before or after JSON.
Language: use %s.

TASK:
Generate EXACTLY %d gift ideas tailored to:
- Age: %d
- Gender: %s
- Occasion: %s
- Budget: %d KZT (tenge)
- Interests: %s

Output JSON schema (STRICT):
{
  "ideas": [
    {
      "title": "string (<= 7 words)",
      "description": "string (<= 30 words)",
      "why": "string (<= 20 words)",
      "price_hint_kzt": "string (e.g., '12000–18000')",
      "tags": ["string", "string"]
    }
  ],
  "meta": {
    "currency": "KZT",
    "locale": "%s"
  }
}

Rules:
- No introductions, no explanations. JSON ONLY.
- Keep language natural, concise, helpful.
- Ensure the JSON is valid, parsable, and follows the schema exactly.`,
		language, IdeaCount, req.Age, req.Gender, req.Occasion, req.Budget, req.Interests, Locale(req.Lang))
}

var _ Producer = (*HFProducer)(nil)
