package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/household-platform/household-service/internal/domain"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
	model      = "claude-3-haiku-20240307"
	maxTokens  = 1024
)

const systemPrompt = `You are a receipt parsing assistant. The user sends a photo of a store receipt.
Extract the vendor name, the transaction date (YYYY-MM-DD), the total amount, and every line item.

RULES:
- Output ONLY a JSON object with this structure:
  {
    "vendorName": (string),
    "transactionDate": (string, YYYY-MM-DD),
    "totalAmount": (number),
    "items": [{"itemName": (string), "quantity": (number), "price": (number)}]
  }
- Quantities default to 1 when the receipt does not state one.
- Prices are the line totals, not unit prices.
- If a field cannot be read, use an empty string or 0.`

// ReceiptScanner extracts structured purchase data from receipt photos.
type ReceiptScanner interface {
	Scan(ctx context.Context, imageBase64, mediaType string) (*domain.ParsedReceipt, error)
}

type scannerClient struct {
	httpClient *resty.Client
}

// NewReceiptScanner creates a configured vision client.
func NewReceiptScanner(apiKey string) ReceiptScanner {
	client := resty.New().
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(30 * time.Second)

	return &scannerClient{httpClient: client}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *scannerClient) Scan(ctx context.Context, imageBase64, mediaType string) (*domain.ParsedReceipt, error) {
	reqBody := messageRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages: []message{{
			Role: "user",
			Content: []contentBlock{
				{Type: "image", Source: &imageSource{Type: "base64", MediaType: mediaType, Data: imageBase64}},
				{Type: "text", Text: "Parse this receipt."},
			},
		}},
	}

	var respBody messageResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(apiURL)
	if err != nil {
		return nil, fmt.Errorf("vision request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("vision request failed: status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(respBody.Content) == 0 {
		return nil, fmt.Errorf("vision response contained no content")
	}

	receipt, err := parseReceiptJSON(respBody.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt: %w", err)
	}
	return receipt, nil
}

// parseReceiptJSON tolerates the model wrapping its answer in a markdown fence.
func parseReceiptJSON(text string) (*domain.ParsedReceipt, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var receipt domain.ParsedReceipt
	if err := json.Unmarshal([]byte(text), &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
