package ai

import (
	"github.com/sashabaranov/go-openai/jsonschema"

	"mvp_launchpad/internal/types"
)

func stringList(description string) jsonschema.Definition {
	return jsonschema.Definition{
		Type:        jsonschema.Array,
		Description: description,
		Items:       &jsonschema.Definition{Type: jsonschema.String},
	}
}

// PlanSchema is the response contract for GeneratePlan.
func PlanSchema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"projectName": {Type: jsonschema.String, Description: "A catchy and relevant name for the project."},
			"summary":     {Type: jsonschema.String, Description: "A brief, one-paragraph summary of the business idea and the problem it solves."},
			"coreFeatures": stringList("A list of 3-5 essential features for the Minimum Viable Product."),
			"userPersonas": stringList("A list of 2-3 target user personas, with a brief description for each."),
			"techStack": {
				Type:        jsonschema.Object,
				Description: "A suggested technology stack for the MVP.",
				Properties: map[string]jsonschema.Definition{
					"frontend": {Type: jsonschema.String, Description: "e.g., React, Vue, Svelte"},
					"backend":  {Type: jsonschema.String, Description: "e.g., Node.js (Express), Python (Django), Go"},
					"database": {Type: jsonschema.String, Description: "e.g., PostgreSQL, MongoDB, Firebase"},
				},
				Required:             []string{"frontend", "backend", "database"},
				AdditionalProperties: false,
			},
			"userStories":            stringList("Key user stories in the format 'As a [persona], I want [goal] so that [benefit]'."),
			"monetizationStrategies": stringList("Potential monetization strategies for the business."),
			"successMetrics":         stringList("Key performance indicators (KPIs) to measure the success of the MVP."),
		},
		Required: []string{
			"projectName", "summary", "coreFeatures", "userPersonas",
			"techStack", "userStories", "monetizationStrategies", "successMetrics",
		},
		AdditionalProperties: false,
	}
}

// LandingPageSchema is the response contract for GenerateLandingPage,
// including the closed icon enum.
func LandingPageSchema() jsonschema.Definition {
	icons := make([]string, len(types.Icons))
	for i, icon := range types.Icons {
		icons[i] = string(icon)
	}

	feature := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"title":       {Type: jsonschema.String, Description: "The title of the feature."},
			"description": {Type: jsonschema.String, Description: "A short, engaging description of the feature's benefit to the user."},
			"icon":        {Type: jsonschema.String, Description: "A relevant icon name.", Enum: icons},
		},
		Required:             []string{"title", "description", "icon"},
		AdditionalProperties: false,
	}

	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"headline":   {Type: jsonschema.String, Description: "A powerful, attention-grabbing headline for the hero section."},
			"subheading": {Type: jsonschema.String, Description: "A concise, benefit-driven subheading that elaborates on the headline."},
			"ctaButton":  {Type: jsonschema.String, Description: "Compelling call-to-action button text, e.g., 'Get Early Access'."},
			"features": {
				Type:        jsonschema.Array,
				Description: "Exactly 3 key features or benefits to highlight on the landing page.",
				Items:       &feature,
			},
		},
		Required:             []string{"headline", "subheading", "ctaButton", "features"},
		AdditionalProperties: false,
	}
}

// relaxEnums returns a copy of def with every enum dropped. Responses are
// validated against the relaxed copy so an unexpected icon is left for the
// renderer to fall back on instead of failing the whole generation.
func relaxEnums(def jsonschema.Definition) jsonschema.Definition {
	out := def
	out.Enum = nil
	if def.Items != nil {
		items := relaxEnums(*def.Items)
		out.Items = &items
	}
	if def.Properties != nil {
		out.Properties = make(map[string]jsonschema.Definition, len(def.Properties))
		for name, prop := range def.Properties {
			out.Properties[name] = relaxEnums(prop)
		}
	}
	return out
}
