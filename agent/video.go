package agent

import (
	"context"
	"fmt"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

// VideoAgent extracts travel information from video content.
type VideoAgent struct {
	Base
}

// NewVideoAgent constructs the agent and registers it.
func NewVideoAgent(gen model.Generator, registry *a2a.Registry, optFns ...func(o *BaseConfig)) *VideoAgent {
	cfg := BaseConfig{
		ID:          "video_agent",
		Name:        "video",
		DisplayName: "VideoAgent",
		Description: "Analyzes travel videos and extracts recommendations",
		Capabilities: []a2a.Capability{{
			Name:        "analyze_video",
			Description: "Extract travel information from a video",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"video_url": map[string]any{"type": "string"},
				},
				"required": []string{"video_url"},
			},
			OutputSchema:      map[string]any{"type": "object"},
			EstimatedDuration: 15,
		}},
		Generator: gen,
		Registry:  registry,
	}
	for _, fn := range optFns {
		fn(&cfg)
	}
	return &VideoAgent{Base: NewBase(cfg)}
}

// Execute implements Agent.
func (a *VideoAgent) Execute(ctx context.Context, input core.Input) core.Result {
	if err := a.Validate(input, "video_url"); err != nil {
		return err.ToResult()
	}

	videoURL := input.String("video_url", "")
	videoSummary := input.String("video_summary", "")
	videoFrames := input.StringSlice("video_frames")

	prompt := fmt.Sprintf(`Analyze the following video content:
Video URL: %s
Video summary: %s
Video frames: %s

The analysis should cover:
1. The video's topic and core message
2. Places or products it recommends
3. Why they are recommended
4. Price information, if present
5. Who the recommendations suit
6. How credible the video appears
7. Useful travel or food takeaways
8. Related tags and keywords

Extract the useful information with a clear structure.`,
		videoURL, videoSummary, joinList(videoFrames))

	analysis, err := a.Generate(ctx, prompt)
	if err != nil {
		return core.NewCollaboratorError(err).ToResult()
	}

	return core.Success("video analyzed", map[string]any{
		"video_url":       videoURL,
		"analysis_result": analysis,
	})
}
