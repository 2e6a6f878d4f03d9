package ai

import (
	"context"
	"log"
	"strings"

	"mvp_launchpad/internal/ai/prompts"
	"mvp_launchpad/internal/types"
)

// GeneratePlan turns a business idea into an MVP plan with a single completion call.
func (g *Generator) GeneratePlan(ctx context.Context, idea string) (types.MVPPlan, error) {
	if strings.TrimSpace(idea) == "" {
		return types.MVPPlan{}, &GenerationError{Stage: StagePlan, Err: ErrEmptyIdea}
	}

	var plan types.MVPPlan
	if err := g.completeJSON(ctx, "mvp_plan", prompts.GetMVPPlanPrompt(idea), PlanSchema(), planTemperature, &plan); err != nil {
		return types.MVPPlan{}, &GenerationError{Stage: StagePlan, Err: err}
	}

	log.Printf("Generated MVP plan %q (%d core features)", plan.ProjectName, len(plan.CoreFeatures))
	return plan, nil
}
