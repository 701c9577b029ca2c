// Package gemini calls the Google Gemini REST API for narrative generation
// and report-image classification. Both are boundary collaborators: callers
// own the fallback when generation or classification fails.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Yousif-Dev/hAIckathon-2025/internal/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client talks to the Gemini generateContent endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Gemini client with a bounded per-request timeout.
func NewClient(apiKey, model string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Generate implements domain.NarrativeGenerator: prompt in, text out.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.generateContent(ctx, []part{{Text: prompt}})
}

// Classify implements domain.Classifier. It asks Gemini for the dumping
// scale and the dominant waste type in two calls, mirroring how the model is
// prompted most reliably (one constrained answer per request).
func (c *Client) Classify(ctx context.Context, image []byte) (domain.DumpingAssessment, error) {
	imagePart := part{InlineData: &inlineData{
		MIMEType: "image/jpeg",
		Data:     base64.StdEncoding.EncodeToString(image),
	}}

	scaleText, err := c.generateContent(ctx, []part{{Text: scalePrompt}, imagePart})
	if err != nil {
		return domain.DumpingAssessment{}, fmt.Errorf("classify scale: %w", err)
	}

	typeText, err := c.generateContent(ctx, []part{{Text: wasteTypePrompt}, imagePart})
	if err != nil {
		return domain.DumpingAssessment{}, fmt.Errorf("classify waste type: %w", err)
	}

	return domain.NewAssessment(parseScale(scaleText), domain.ParseWasteType(typeText)), nil
}

func (c *Client) generateContent(ctx context.Context, parts []part) (string, error) {
	body, err := json.Marshal(request{Contents: []content{{Parts: parts}}})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: status %d: %s", resp.StatusCode, respBody)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	text := strings.TrimSpace(payload.Candidates[0].Content.Parts[0].Text)
	// Strip stray markdown emphasis the model occasionally adds.
	text = strings.ReplaceAll(text, "**", "")
	return text, nil
}

// parseScale extracts the first 1-3 digit from a constrained model answer,
// defaulting to the medium scale.
func parseScale(s string) domain.Scale {
	for _, r := range s {
		if r >= '1' && r <= '3' {
			return domain.Scale(r - '0')
		}
	}
	return domain.ScaleMedium
}

const scalePrompt = `You are an expert at analyzing fly-tipping (illegal waste dumping) incidents.

Analyze this image and classify the amount of waste into EXACTLY ONE of these three severity levels:

1 - a single small refuse bag or equivalent (roughly one shopping bag worth)
2 - a medium pile (roughly a wheelie bin's worth, 2-3 bags)
3 - a large pile or van-sized load (4+ bags, or clearly requiring a vehicle)

CRITICAL INSTRUCTIONS:
- You MUST respond with ONLY ONE of these exact digits: 1, 2, 3
- Do NOT include any other text, explanation, or punctuation
- If you cannot see waste in the image, respond with: 1
- Base your decision on the VOLUME of waste visible

Your response (one digit only):`

const wasteTypePrompt = `You are an expert at analyzing fly-tipping (illegal waste dumping) incidents.

Analyze this image and classify the TYPE of waste into EXACTLY ONE of these categories:

1. household - General household rubbish, black bags, food waste, general trash
2. construction - Building materials, rubble, timber, plasterboard, bricks, cement
3. garden - Grass cuttings, branches, leaves, soil, garden waste
4. hazardous - Paint, chemicals, asbestos, batteries, oil, toxic materials
5. furniture - Sofas, mattresses, chairs, tables, wardrobes, cabinets
6. electrical - White goods (fridges, washers), TVs, computers, electronic items

CRITICAL INSTRUCTIONS:
- You MUST respond with ONLY ONE of these exact words: household, construction, garden, hazardous, furniture, electrical
- Do NOT include any other text, explanation, or punctuation
- If you see multiple types, choose the DOMINANT or most visible type
- If you cannot clearly identify the waste, respond with: household

Your response (one word only):`

// Gemini API request/response types (only the fields we use).

type request struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type response struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}
