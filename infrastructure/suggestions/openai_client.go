// Package suggestions implements the generative-text pattern suggestion
// collaborator on top of the OpenAI chat completions API. The model is
// asked for a strict JSON array; anything that cannot be parsed into
// candidates is treated as a collaborator failure and the caller degrades
// to rule-based patterns only.
package suggestions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"lucidlog-backend/application/ports"
	apperrors "lucidlog-backend/pkg/errors"
)

const systemPrompt = `You are a dream journal analyst. Given a list of journal entry summaries, propose recurring patterns you notice across them.

Respond with ONLY a JSON array. Each element must have these fields:
  "category":    one of "symbol", "emotion", "timing", "theme", "stress", "seasonal"
  "name":        short pattern name
  "description": one or two sentences describing the pattern
  "confidence":  number between 0 and 1
  "frequency":   integer count of entries the pattern appears in
  "insight":     one actionable observation for the journal keeper

Propose at most 5 patterns. If nothing recurs, respond with [].`

// maxCandidates bounds how many proposals one response can contribute,
// regardless of how many the model returns.
const maxCandidates = 5

// OpenAIClient implements ports.SuggestionService
type OpenAIClient struct {
	client openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIClient creates a suggestion client for the given model
func NewOpenAIClient(apiKey, model string, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: logger,
	}
}

// SuggestPatterns sends the entry summaries to the model and parses its
// proposals. The context carries the caller's timeout; a slow or failing
// call returns an error rather than blocking the analysis run.
func (c *OpenAIClient) SuggestPatterns(ctx context.Context, summaries []ports.EntrySummary) ([]ports.PatternCandidate, error) {
	payload, err := json.Marshal(summaries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode entry summaries: %w", err)
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(string(payload)),
		},
	})
	if err != nil {
		return nil, apperrors.NewCollaboratorError("openai", err)
	}

	if len(completion.Choices) == 0 {
		return nil, apperrors.NewCollaboratorError("openai", fmt.Errorf("empty completion"))
	}

	candidates, err := parseCandidates(completion.Choices[0].Message.Content)
	if err != nil {
		c.logger.Warn("Unparseable suggestion response",
			zap.String("model", c.model),
			zap.Error(err),
		)
		return nil, apperrors.NewCollaboratorError("openai", err)
	}

	return candidates, nil
}

// parseCandidates extracts pattern proposals from a model response. The
// response may wrap the JSON array in markdown fences or prose, so we
// locate the outermost array before decoding. Individual malformed
// elements are skipped, not fatal.
func parseCandidates(content string) ([]ports.PatternCandidate, error) {
	raw := extractArray(content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON array in response")
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("response is not a JSON array")
	}

	var candidates []ports.PatternCandidate
	for _, item := range parsed.Array() {
		if !item.IsObject() {
			continue
		}
		name := strings.TrimSpace(item.Get("name").String())
		if name == "" {
			continue
		}
		candidates = append(candidates, ports.PatternCandidate{
			Category:    strings.ToLower(strings.TrimSpace(item.Get("category").String())),
			Name:        name,
			Description: item.Get("description").String(),
			Confidence:  item.Get("confidence").Float(),
			Frequency:   int(item.Get("frequency").Int()),
			Insight:     item.Get("insight").String(),
		})
		if len(candidates) == maxCandidates {
			break
		}
	}

	return candidates, nil
}

// extractArray returns the substring spanning the first '[' through the
// last ']', which survives markdown code fences and leading prose.
func extractArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return content[start : end+1]
}
