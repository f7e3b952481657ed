package agent

import (
	"context"
	"fmt"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

// XiaohongshuAgent extracts travel information from Xiaohongshu notes.
type XiaohongshuAgent struct {
	Base
}

// NewXiaohongshuAgent constructs the agent and registers it.
func NewXiaohongshuAgent(gen model.Generator, registry *a2a.Registry, optFns ...func(o *BaseConfig)) *XiaohongshuAgent {
	cfg := BaseConfig{
		ID:          "xiaohongshu_agent",
		Name:        "xiaohongshu",
		DisplayName: "XiaohongshuAgent",
		Description: "Analyzes Xiaohongshu notes and extracts travel insights",
		Capabilities: []a2a.Capability{{
			Name:        "analyze_xiaohongshu",
			Description: "Extract travel information from a Xiaohongshu note",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"note_content": map[string]any{"type": "string"},
				},
				"required": []string{"note_content"},
			},
			OutputSchema:      map[string]any{"type": "object"},
			EstimatedDuration: 10,
		}},
		Generator: gen,
		Registry:  registry,
	}
	for _, fn := range optFns {
		fn(&cfg)
	}
	return &XiaohongshuAgent{Base: NewBase(cfg)}
}

// Execute implements Agent.
func (a *XiaohongshuAgent) Execute(ctx context.Context, input core.Input) core.Result {
	if err := a.Validate(input, "note_content"); err != nil {
		return err.ToResult()
	}

	noteContent := input.String("note_content", "")
	noteImages := input.StringSlice("note_images")
	noteTags := input.StringSlice("note_tags")

	prompt := fmt.Sprintf(`Analyze the following Xiaohongshu note:
Note content: %s
Note images: %s
Note tags: %s

The analysis should cover:
1. The note's topic and core message
2. Places or products it recommends
3. Why they are recommended
4. Price information, if present
5. Who the recommendations suit
6. How credible the note appears
7. Useful travel or food takeaways
8. Related tags and keywords

Extract the useful information with a clear structure.`,
		noteContent, joinList(noteImages), joinList(noteTags))

	analysis, err := a.Generate(ctx, prompt)
	if err != nil {
		return core.NewCollaboratorError(err).ToResult()
	}

	return core.Success("note analyzed", map[string]any{
		"note_content":    noteContent,
		"analysis_result": analysis,
	})
}
