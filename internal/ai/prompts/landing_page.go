package prompts

import (
	"fmt"
	"strings"
)

// GetLandingPagePrompt builds the landing-page prompt from the idea and a digest of its plan.
func GetLandingPagePrompt(idea, projectName, summary string, coreFeatures, personas []string) string {
	prompt := `
		Based on the following business idea and its corresponding MVP plan, generate compelling marketing copy for a promotional landing page.
		The tone should be exciting, professional, and persuasive, aimed at attracting early users.

		Business Idea: "%s"

		MVP Plan:
		- Project Name: %s
		- Summary: %s
		- Core Features: %s
		- Target Audience: %s

		Generate the content according to the provided JSON schema. Create exactly 3 features, each directly inspired by the MVP's core features,
		and pick each feature's icon from: 'zap', 'shield-check', 'users', 'globe', 'trending-up', 'star'.
	`

	return fmt.Sprintf(prompt,
		idea,
		projectName,
		summary,
		strings.Join(coreFeatures, ", "),
		strings.Join(personas, ", "),
	)
}
