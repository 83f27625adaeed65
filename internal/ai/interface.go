package ai

import (
	"context"
)

// SlotExtractor is the contract for model-backed slot extraction.
// The rule-based extractor always satisfies the pipeline on its own;
// implementations here are an optional second pass for turns the rules
// cannot parse, and can be swapped (Gemini, OpenAI, ...) without
// touching the workflow.
type SlotExtractor interface {
	// ExtractSlots reads one user message and returns any trip slots the
	// model can identify. known carries already-collected values so the
	// model does not re-extract them.
	ExtractSlots(ctx context.Context, userMessage string, known map[string]string) (*ExtractionResult, error)
}
