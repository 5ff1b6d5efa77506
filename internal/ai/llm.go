package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// Model inputs are truncated to keep huge pasted pages inside prompt limits.
const maxPromptInput = 20000

// LLMExtractor delegates extraction to an external language model. When the
// model replies with something that carries no parseable JSON object, the
// heuristic extractor takes over instead of failing the whole operation.
type LLMExtractor struct {
	model    llms.Model
	fallback *HeuristicExtractor
}

func NewLLMExtractor(model llms.Model) *LLMExtractor {
	return &LLMExtractor{
		model:    model,
		fallback: NewHeuristicExtractor(),
	}
}

func (e *LLMExtractor) Extract(ctx context.Context, description string) (*Extraction, error) {
	if len(description) > maxPromptInput {
		description = description[:maxPromptInput]
	}

	var prompt strings.Builder
	if err := extractJobTemplate.Execute(&prompt, struct{ Description string }{description}); err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	reply, err := llms.GenerateFromSinglePrompt(ctx, e.model, prompt.String())
	if err != nil {
		return nil, fmt.Errorf("generate extraction: %w", err)
	}

	extraction, perr := parseExtraction(reply)
	if perr != nil {
		slog.Warn("unparseable model reply, falling back to heuristic extraction", "error", perr)
		return e.fallback.Extract(ctx, description)
	}
	return extraction, nil
}

// parseExtraction pulls the first {...} object out of the reply; models
// occasionally wrap their JSON in prose or code fences despite instructions.
func parseExtraction(reply string) (*Extraction, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var out Extraction
	if err := json.Unmarshal([]byte(reply[start:end+1]), &out); err != nil {
		return nil, fmt.Errorf("decode extraction: %w", err)
	}
	return &out, nil
}
