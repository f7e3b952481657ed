package workflow

import (
	"context"

	"github.com/pumpkinkking/whereeatai/agent"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/logging"
)

// ContentAnalysisName is the dispatch name of the content analysis workflow.
const ContentAnalysisName = "content_analysis"

// Stage names of the content analysis workflow.
const (
	stageAnalyzeXiaohongshu     = "analyze_xiaohongshu"
	stageAnalyzeVideo           = "analyze_video"
	stageExtractRecommendations = "extract_recommendations"
)

// ContentAnalysisWorkflow analyzes Xiaohongshu notes and short videos, then
// merges the extracted insights into topic recommendations. The two analysis
// stages are independent and run concurrently; each skips silently when its
// input field is absent, so the workflow accepts a note, a video, or both.
type ContentAnalysisWorkflow struct {
	engine  *Engine
	manager *agent.Manager
	logger  logging.Logger
}

// ContentAnalysisWorkflowOptions configures a ContentAnalysisWorkflow.
type ContentAnalysisWorkflowOptions struct {
	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// NewContentAnalysisWorkflow builds the workflow over the given agent manager.
func NewContentAnalysisWorkflow(manager *agent.Manager, optFns ...func(o *ContentAnalysisWorkflowOptions)) *ContentAnalysisWorkflow {
	opts := ContentAnalysisWorkflowOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	w := &ContentAnalysisWorkflow{
		manager: manager,
		logger:  logging.OrNoOp(opts.Logger),
	}

	e := NewEngine(ContentAnalysisName, func(o *EngineOptions) { o.Logger = opts.Logger })
	mustAddStage(e, stageAnalyzeXiaohongshu, nil, w.analyzeXiaohongshu)
	mustAddStage(e, stageAnalyzeVideo, nil, w.analyzeVideo)
	mustAddStage(e, stageExtractRecommendations, []string{stageAnalyzeXiaohongshu, stageAnalyzeVideo}, w.extractRecommendations)
	w.engine = e

	return w
}

// Name implements core.Workflow.
func (w *ContentAnalysisWorkflow) Name() string { return ContentAnalysisName }

// Run implements core.Workflow.
func (w *ContentAnalysisWorkflow) Run(ctx context.Context, input core.Input) core.Result {
	w.logger.Info("content analysis workflow started",
		"has_note", input.Has("note_content"), "has_video", input.Has("video_url"))

	res := w.engine.Run(ctx, input)
	switch res.Status {
	case core.StatusSuccess:
		res.Message = "content analyzed"
	case core.StatusPartialSuccess:
		res.Message = "content analyzed with partial failures"
	}
	return res
}

// analyzeXiaohongshu runs the note analysis when note_content is present and
// skips silently otherwise. Skipping leaves the slot empty, which the merge
// stage treats as absent insights.
func (w *ContentAnalysisWorkflow) analyzeXiaohongshu(ctx context.Context, state *State) error {
	if !state.Input().Has("note_content") {
		w.logger.Debug("no note content, skipping", "stage", stageAnalyzeXiaohongshu)
		return nil
	}
	res := w.manager.ExecuteAgent(ctx, "xiaohongshu", state.Input())
	state.SetResult(stageAnalyzeXiaohongshu, res)
	if res.Failed() {
		state.AddError(stageAnalyzeXiaohongshu + ": " + res.Message)
	}
	return nil
}

// analyzeVideo mirrors analyzeXiaohongshu for the video_url field.
func (w *ContentAnalysisWorkflow) analyzeVideo(ctx context.Context, state *State) error {
	if !state.Input().Has("video_url") {
		w.logger.Debug("no video url, skipping", "stage", stageAnalyzeVideo)
		return nil
	}
	res := w.manager.ExecuteAgent(ctx, "video", state.Input())
	state.SetResult(stageAnalyzeVideo, res)
	if res.Failed() {
		state.AddError(stageAnalyzeVideo + ": " + res.Message)
	}
	return nil
}

// extractRecommendations merges whatever insights the analysis stages
// produced. It always runs and always writes the final output, even when
// both upstream slots are empty.
func (w *ContentAnalysisWorkflow) extractRecommendations(ctx context.Context, state *State) error {
	noteData := state.StageData(stageAnalyzeXiaohongshu)
	videoData := state.StageData(stageAnalyzeVideo)

	final := map[string]any{
		"xiaohongshu_insights": noteData,
		"video_insights":       videoData,
		"errors":               state.Errors(),
	}

	topic := state.Input().String("topic", "")
	interests := state.Input().StringSlice("interests")
	if topic != "" && len(interests) > 0 {
		res := w.manager.ExecuteAgent(ctx, "topic_recommendation", state.Input())
		state.SetResult(stageExtractRecommendations, res)
		if res.Failed() {
			state.AddError(stageExtractRecommendations + ": " + res.Message)
			final["errors"] = state.Errors()
		} else {
			final["topic_recommendations"] = res.Data
		}
	}

	state.SetFinal(final)
	return nil
}
