package ai

import (
	"context"
	"log"
	"strings"

	"mvp_launchpad/internal/ai/prompts"
	"mvp_launchpad/internal/types"
)

// GenerateLandingPage writes landing-page copy for idea, guided by its already generated plan.
func (g *Generator) GenerateLandingPage(ctx context.Context, idea string, plan types.MVPPlan) (types.LandingPageContent, error) {
	if strings.TrimSpace(idea) == "" {
		return types.LandingPageContent{}, &GenerationError{Stage: StageLandingPage, Err: ErrEmptyIdea}
	}

	prompt := prompts.GetLandingPagePrompt(idea, plan.ProjectName, plan.Summary, plan.CoreFeatures, plan.UserPersonas)

	var content types.LandingPageContent
	if err := g.completeJSON(ctx, "landing_page", prompt, LandingPageSchema(), landingPageTemperature, &content); err != nil {
		return types.LandingPageContent{}, &GenerationError{Stage: StageLandingPage, Err: err}
	}

	for _, f := range content.Features {
		if !f.Icon.Known() {
			log.Printf("WARN: Landing page feature %q has unknown icon %q; it will render as %q", f.Title, f.Icon, types.DefaultIcon)
		}
	}
	log.Printf("Generated landing page content for %q (%d features)", plan.ProjectName, len(content.Features))
	return content, nil
}
