package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

// NewOpenAI talks to any OpenAI-compatible chat-completions endpoint.
func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) ExtractSeed(pageContent, sourceURL string) (*ExtractedSeed, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a horticultural data extractor. Reply ONLY valid JSON, no markdown fences."},
			{"role": "user", "content": renderExtractPrompt(pageContent, sourceURL)},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 45 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("no choices")
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	// Some models wrap JSON in fences despite instructions.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var seed ExtractedSeed
	if err := json.Unmarshal([]byte(content), &seed); err != nil {
		return nil, fmt.Errorf("parse extraction: %v / raw: %s", err, content)
	}
	return &seed, nil
}

func renderExtractPrompt(pageContent, sourceURL string) string {
	return fmt.Sprintf(`Extract seed planting data from this product page.

Rules:
- First decide if this is actually a seed product page. If it is a category
  listing, blog post, or anything else, return {"is_seed_product_page": false}.
- variety_name is the specific variety (e.g. "Cherokee Purple"), common_name
  the plant type (e.g. "tomato"). Lowercase common_name.
- planting_method is "start_indoors" or "direct_sow". Use the page's advice;
  leave null if the page gives none.
- Week counts are integers. cold_hardy means the seedling tolerates light
  frost. weeks_before_last_frost_outdoor applies only to cold-hardy
  direct-sow crops.
- Use null for anything the page does not state. Never guess numbers.
- If a [Product Images] section is present, pick the best product photo URL
  as image_url.
- Reply with a single JSON object only: {"is_seed_product_page": bool,
  "variety_name": string, "common_name": string|null, "seed_company":
  string|null, "image_url": string|null, "days_to_maturity_min": int|null,
  "days_to_maturity_max": int|null, "planting_depth_inches": number|null,
  "spacing_inches": int|null, "row_spacing_inches": int|null,
  "sun_requirement": "full_sun"|"partial_shade"|"shade"|null,
  "water_requirement": "low"|"medium"|"high"|null, "planting_method":
  string|null, "weeks_before_last_frost": int|null, "weeks_after_last_frost":
  int|null, "cold_hardy": bool, "weeks_before_last_frost_outdoor": int|null,
  "succession_planting": bool, "succession_interval_days": int|null,
  "fall_planting": bool, "cold_stratification_required": bool,
  "cold_stratification_weeks": int|null, "notes": string|null}

SOURCE URL: %s

PAGE CONTENT:
%s
`, sourceURL, pageContent)
}
