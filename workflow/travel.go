package workflow

import (
	"context"
	"fmt"

	"github.com/pumpkinkking/whereeatai/agent"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/logging"
)

// TravelPlanName is the dispatch name of the travel planning workflow.
const TravelPlanName = "travel_plan"

// Stage names of the travel planning workflow.
const (
	stageAnalyzeInput       = "analyze_input"
	stageGenerateTravelogue = "generate_travelogue"
	stagePlanItinerary      = "plan_itinerary"
	stageRecommendFood      = "recommend_food"
	stageComparePrices      = "compare_prices"
	stageGenerateFinalPlan  = "generate_final_plan"
)

// defaultPlatforms are the booking platforms used for price comparison when
// the caller does not supply any.
var defaultPlatforms = []string{"Ctrip", "Meituan", "Fliggy", "Qunar"}

// TravelWorkflow coordinates the travelogue, itinerary, food and price
// agents into one merged travel plan.
//
// Dependency DAG: analyze_input runs first; generate_travelogue and
// plan_itinerary depend only on it and run concurrently; recommend_food
// depends on both; compare_prices depends on recommend_food; the final merge
// reads every prior slot and never fails structurally.
type TravelWorkflow struct {
	engine  *Engine
	manager *agent.Manager
	logger  logging.Logger
}

// TravelWorkflowOptions configures a TravelWorkflow.
type TravelWorkflowOptions struct {
	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// NewTravelWorkflow builds the workflow over the given agent manager.
func NewTravelWorkflow(manager *agent.Manager, optFns ...func(o *TravelWorkflowOptions)) *TravelWorkflow {
	opts := TravelWorkflowOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	w := &TravelWorkflow{
		manager: manager,
		logger:  logging.OrNoOp(opts.Logger),
	}

	e := NewEngine(TravelPlanName, func(o *EngineOptions) { o.Logger = opts.Logger })
	mustAddStage(e, stageAnalyzeInput, nil, w.analyzeInput)
	mustAddStage(e, stageGenerateTravelogue, []string{stageAnalyzeInput}, w.generateTravelogue)
	mustAddStage(e, stagePlanItinerary, []string{stageAnalyzeInput}, w.planItinerary)
	mustAddStage(e, stageRecommendFood, []string{stageGenerateTravelogue, stagePlanItinerary}, w.recommendFood)
	mustAddStage(e, stageComparePrices, []string{stageRecommendFood}, w.comparePrices)
	mustAddStage(e, stageGenerateFinalPlan, []string{stageComparePrices}, w.generateFinalPlan)
	w.engine = e

	return w
}

// Name implements core.Workflow.
func (w *TravelWorkflow) Name() string { return TravelPlanName }

// Run implements core.Workflow.
func (w *TravelWorkflow) Run(ctx context.Context, input core.Input) core.Result {
	w.logger.Info("travel workflow started", "destination", input.String("destination", ""))

	res := w.engine.Run(ctx, input)
	switch res.Status {
	case core.StatusSuccess:
		res.Message = "travel plan generated"
	case core.StatusPartialSuccess:
		res.Message = "travel plan generated with partial failures"
	}
	return res
}

// analyzeInput validates the required top-level fields. A missing field is a
// non-fatal stage failure: the error names the field and the run continues
// so downstream stages can degrade.
func (w *TravelWorkflow) analyzeInput(_ context.Context, state *State) error {
	input := state.Input()
	var missing []string
	for _, field := range []string{"destination", "duration", "interests"} {
		if !input.Has(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return core.NewValidationError(missing)
	}
	state.SetResult(stageAnalyzeInput, core.Success("input validated", map[string]any{
		"destination": input.String("destination", ""),
	}))
	return nil
}

func (w *TravelWorkflow) generateTravelogue(ctx context.Context, state *State) error {
	res := w.manager.ExecuteAgent(ctx, "travelogue", state.Input())
	state.SetResult(stageGenerateTravelogue, res)
	if res.Failed() {
		state.AddError(fmt.Sprintf("%s: %s", stageGenerateTravelogue, res.Message))
	}
	return nil
}

func (w *TravelWorkflow) planItinerary(ctx context.Context, state *State) error {
	res := w.manager.ExecuteAgent(ctx, "itinerary", state.Input())
	state.SetResult(stagePlanItinerary, res)
	if res.Failed() {
		state.AddError(fmt.Sprintf("%s: %s", stagePlanItinerary, res.Message))
	}
	return nil
}

// recommendFood derives its input from the validated request: the
// destination becomes the location, the interests stand in for cuisine
// preferences. Upstream failures leave those fields at defaults rather than
// blocking the stage.
func (w *TravelWorkflow) recommendFood(ctx context.Context, state *State) error {
	input := state.Input()

	foodInput := core.Input{}
	for k, v := range input {
		foodInput[k] = v
	}
	foodInput["location"] = input.String("destination", "")
	cuisine := input.StringSlice("interests")
	if len(cuisine) == 0 {
		cuisine = []string{"local"}
	}
	foodInput["cuisine_type"] = cuisine

	res := w.manager.ExecuteAgent(ctx, "food_recommendation", foodInput)
	state.SetResult(stageRecommendFood, res)
	if res.Failed() {
		state.AddError(fmt.Sprintf("%s: %s", stageRecommendFood, res.Message))
	}
	return nil
}

func (w *TravelWorkflow) comparePrices(ctx context.Context, state *State) error {
	destination := state.Input().String("destination", "")

	priceInput := core.Input{
		"product":   fmt.Sprintf("%s travel package", destination),
		"platforms": defaultPlatforms,
		"location":  destination,
	}
	if platforms := state.Input().StringSlice("platforms"); len(platforms) > 0 {
		priceInput["platforms"] = platforms
	}

	res := w.manager.ExecuteAgent(ctx, "price_comparison", priceInput)
	state.SetResult(stageComparePrices, res)
	if res.Failed() {
		state.AddError(fmt.Sprintf("%s: %s", stageComparePrices, res.Message))
	}
	return nil
}

// generateFinalPlan merges every slot into the final plan. It never fails
// structurally: errored or skipped slots contribute empty objects.
func (w *TravelWorkflow) generateFinalPlan(_ context.Context, state *State) error {
	input := state.Input()
	state.SetFinal(map[string]any{
		"destination":          input.String("destination", ""),
		"duration":             input.String("duration", ""),
		"interests":            input.StringSlice("interests"),
		"travelogue":           state.StageData(stageGenerateTravelogue),
		"itinerary":            state.StageData(stagePlanItinerary),
		"food_recommendations": state.StageData(stageRecommendFood),
		"price_comparison":     state.StageData(stageComparePrices),
		"errors":               state.Errors(),
	})
	state.SetResult(stageGenerateFinalPlan, core.Success("final plan merged", nil))
	return nil
}

// mustAddStage panics on a malformed static stage definition. The graphs in
// this package are fixed at construction time, so a failure here is a
// programming error, not a runtime condition.
func mustAddStage(e *Engine, name string, deps []string, fn StageFunc) {
	if err := e.AddStage(name, deps, fn); err != nil {
		panic(err)
	}
}
