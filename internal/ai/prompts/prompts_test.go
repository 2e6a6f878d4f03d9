package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMVPPlanPrompt(t *testing.T) {
	p := GetMVPPlanPrompt("Artisanal coffee subscriptions")
	assert.Contains(t, p, `Business Idea: "Artisanal coffee subscriptions"`)
	assert.Contains(t, p, "successMetrics")
}

func TestGetLandingPagePrompt_Digest(t *testing.T) {
	p := GetLandingPagePrompt("idea", "BeanBox", "Coffee monthly",
		[]string{"Catalog", "Checkout"}, []string{"Home brewer", "Office manager"})

	assert.Contains(t, p, `Business Idea: "idea"`)
	assert.Contains(t, p, "- Project Name: BeanBox")
	assert.Contains(t, p, "- Summary: Coffee monthly")
	assert.Contains(t, p, "- Core Features: Catalog, Checkout")
	assert.Contains(t, p, "- Target Audience: Home brewer, Office manager")
	assert.Contains(t, p, "'trending-up'")
}
