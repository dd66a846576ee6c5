package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"

	"github.com/theimaginaryfoundation/enrich-o-bot/enrich"
)

// Completer adapts the OpenAI responses API to enrich.Completer. Transport
// retries on rate limits and server errors live here: the pipeline itself
// never retries.
type Completer struct {
	client          *openai.Client
	model           string
	maxOutputTokens int64
}

// NewCompleter wires an OpenAI client as the pipeline's LLM collaborator.
func NewCompleter(client *openai.Client, model string) *Completer {
	return &Completer{
		client:          client,
		model:           model,
		maxOutputTokens: 1500,
	}
}

func (c *Completer) Complete(ctx context.Context, p enrich.Prompt) (string, error) {
	if c.client == nil {
		return "", errors.New("provider: client is nil")
	}
	if c.model == "" {
		return "", errors.New("provider: model is empty")
	}

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(c.maxOutputTokens),
		Instructions:    openai.String(p.Instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(p.Input, responses.EasyInputMessageRoleUser),
			},
		},
	}
	if p.Schema != nil {
		params.Text = responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:        p.SchemaName,
					Schema:      p.Schema,
					Strict:      openai.Bool(true),
					Description: openai.String(p.SchemaName + " JSON"),
					Type:        "json_schema",
				},
			},
		}
	}

	resp, err := callWithRetry(ctx, c.client, params)
	if err != nil {
		return "", err
	}
	return resp.OutputText(), nil
}

func callWithRetry(ctx context.Context, client *openai.Client, params responses.ResponseNewParams) (*responses.Response, error) {
	const maxRetries = 3
	rateLimitWaitTimes := []time.Duration{65 * time.Second, 100 * time.Second, 135 * time.Second}
	serverErrorWaitTimes := []time.Duration{5 * time.Second, 30 * time.Second, 60 * time.Second}

	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err := client.Responses.New(ctx, params)
		if err != nil {
			if isRateLimitError(err) {
				if attempt < maxRetries-1 {
					time.Sleep(rateLimitWaitTimes[attempt])
					continue
				}
			} else if isServerError(err) {
				if attempt < maxRetries-1 {
					time.Sleep(serverErrorWaitTimes[attempt])
					continue
				}
			}
			return nil, err
		}
		return resp, nil
	}
	return nil, fmt.Errorf("failed after %d attempts due to OpenAI API issues", maxRetries)
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests")
}

func isServerError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "server_error")
}
