package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"

	"github.com/ganot/lumina/internal/domain/concept"
)

// DefaultBaseURL is the production Gemini API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Blob is inline binary content, base64 encoded.
type Blob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Part is one piece of multimodal content in a request or response.
type Part struct {
	Text       string `json:"text,omitempty"`
	InlineData *Blob  `json:"inlineData,omitempty"`
}

// Content is an ordered sequence of parts.
type Content struct {
	Parts []Part `json:"parts"`
}

// ImageConfig carries image-specific generation parameters.
type ImageConfig struct {
	ImageSize   string `json:"imageSize,omitempty"`
	AspectRatio string `json:"aspectRatio,omitempty"`
}

// GenerationConfig carries model-level generation parameters.
type GenerationConfig struct {
	ResponseMIMEType string             `json:"responseMimeType,omitempty"`
	ResponseSchema   *jsonschema.Schema `json:"responseSchema,omitempty"`
	ImageConfig      *ImageConfig       `json:"imageConfig,omitempty"`
}

// ContentRequest is one generateContent call.
type ContentRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type contentResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
}

// Client is a thin HTTP client for the Gemini generateContent API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client. An empty baseURL selects the production
// endpoint; a nil httpClient gets a sensible default.
func NewClient(baseURL, apiKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient, logger: logger}
}

// GenerateContent posts one request to model and returns the parts of the
// first candidate.
func (c *Client) GenerateContent(ctx context.Context, model string, req ContentRequest) ([]Part, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	requestID := uuid.NewString()
	c.logger.Debug("generateContent request", "request_id", requestID, "model", model, "bytes", len(body))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling model %s: %w", model, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("generateContent error", "request_id", requestID, "status", resp.StatusCode)
		// Keep status and body in the message so callers can classify
		// quota and permission failures by substring.
		return nil, fmt.Errorf("model %s returned status %d: %s", model, resp.StatusCode, string(respBody))
	}

	var parsed contentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return nil, fmt.Errorf("model %s returned no candidates", model)
	}

	parts := parsed.Candidates[0].Content.Parts
	c.logger.Debug("generateContent response", "request_id", requestID, "parts", len(parts))
	return parts, nil
}

// GenerateText runs a text-only generation and concatenates the text
// parts of the first candidate. Implements concept.TextCapability.
func (c *Client) GenerateText(ctx context.Context, req concept.TextRequest) (string, error) {
	contentReq := ContentRequest{
		Contents: []Content{{Parts: []Part{{Text: req.Prompt}}}},
	}
	if req.SystemInstruction != "" {
		contentReq.SystemInstruction = &Content{Parts: []Part{{Text: req.SystemInstruction}}}
	}
	if req.ResponseSchema != nil {
		contentReq.GenerationConfig = &GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   req.ResponseSchema,
		}
	}

	parts, err := c.GenerateContent(ctx, req.Model, contentReq)
	if err != nil {
		return "", err
	}

	var text string
	for _, part := range parts {
		text += part.Text
	}
	return text, nil
}
