package prompts

import "fmt"

// SystemPrompt is sent ahead of both generation prompts.
const SystemPrompt = `You are a seasoned product strategist and startup advisor.
Respond ONLY with JSON that matches the requested schema.`

// GetMVPPlanPrompt builds the plan-stage prompt for a business idea.
func GetMVPPlanPrompt(idea string) string {
	prompt := `
		Analyze the following business idea and generate a comprehensive MVP (Minimum Viable Product) plan.
		The plan should be clear, concise, and actionable for a working professional looking to start this project.

		Business Idea: "%s"

		Provide a detailed breakdown covering all the fields in the requested JSON schema:
		*   projectName: a catchy and relevant name for the project
		*   summary: one paragraph on the idea and the problem it solves
		*   coreFeatures: 3-5 essential features for the MVP
		*   userPersonas: 2-3 target user personas, each with a brief description
		*   techStack: frontend, backend and database suggestions
		*   userStories: key user stories in the format 'As a [persona], I want [goal] so that [benefit]'
		*   monetizationStrategies: potential ways the business makes money
		*   successMetrics: KPIs to measure the success of the MVP
	`

	return fmt.Sprintf(prompt, idea)
}
