// Package gemini localizes objects in images by asking a Gemini model for a
// JSON list of labeled objects.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"buildquote/backend/internal/domain/detect"
)

const DefaultModel = "gemini-2.5-flash"

const prompt = `You label objects on a photograph of a building facade.
List every distinct object you can localize, one entry per instance.
Use short English nouns as names (for example "Window", "Door", "Roof").
Return STRICT JSON and nothing else:
{"objects":[{"name":string,"score":number}]}
score is your confidence between 0 and 1.`

type Client struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini: api key is empty")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{client: cl, model: strings.TrimSpace(model)}, nil
}

func (c *Client) Close() error { return c.client.Close() }

func (c *Client) LocalizeObjects(ctx context.Context, imagePath string) ([]detect.Object, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	m := c.client.GenerativeModel(c.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}

	resp, err := m.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: imageMIME(data), Data: data},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	txt := firstText(resp)
	if txt == "" {
		return nil, errors.New("gemini: empty response")
	}
	return parseObjects(txt)
}

func parseObjects(txt string) ([]detect.Object, error) {
	var out struct {
		Objects []detect.Object `json:"objects"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(txt)), &out); err != nil {
		return nil, fmt.Errorf("gemini: bad JSON: %w", err)
	}
	return out.Objects, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func imageMIME(data []byte) string {
	ct := http.DetectContentType(data)
	if strings.HasPrefix(ct, "image/") {
		return ct
	}
	return "image/jpeg"
}

func ptrFloat32(v float32) *float32 { return &v }
