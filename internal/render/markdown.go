// Package render turns a history entry into Markdown or HTML for export and preview.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"mvp_launchpad/internal/types"
)

var iconLabels = map[types.Icon]string{
	types.IconZap:         "⚡",
	types.IconShieldCheck: "🛡️",
	types.IconUsers:       "👥",
	types.IconGlobe:       "🌐",
	types.IconTrendingUp:  "📈",
	types.IconStar:        "⭐",
}

// IconLabel returns the glyph for icon, or the default icon's glyph for anything unknown.
func IconLabel(icon types.Icon) string {
	return iconLabels[icon.OrDefault()]
}

// markdown renderer shared by all HTML calls. Raw HTML in the source is
// escaped, which matters since most of the text comes from a model.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "### %s\n\n", title)
	if len(items) == 0 {
		b.WriteString("_None._\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

// Markdown renders the plan and the landing page copy of entry.
func Markdown(entry types.HistoryEntry) string {
	plan := entry.MVPPlan
	page := entry.LandingPageContent

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", plan.ProjectName)
	if entry.CreatedAt != "" {
		fmt.Fprintf(&b, "_Generated %s_\n\n", entry.CreatedAt)
	}

	b.WriteString("## MVP Plan\n\n")
	fmt.Fprintf(&b, "%s\n\n", plan.Summary)
	writeList(&b, "Core Features", plan.CoreFeatures)
	writeList(&b, "User Personas", plan.UserPersonas)

	b.WriteString("### Tech Stack\n\n")
	b.WriteString("| Layer | Choice |\n|---|---|\n")
	fmt.Fprintf(&b, "| Frontend | %s |\n", plan.TechStack.Frontend)
	fmt.Fprintf(&b, "| Backend | %s |\n", plan.TechStack.Backend)
	fmt.Fprintf(&b, "| Database | %s |\n\n", plan.TechStack.Database)

	writeList(&b, "User Stories", plan.UserStories)
	writeList(&b, "Monetization Strategies", plan.MonetizationStrategies)
	writeList(&b, "Success Metrics", plan.SuccessMetrics)

	b.WriteString("## Landing Page\n\n")
	fmt.Fprintf(&b, "### %s\n\n", page.Headline)
	fmt.Fprintf(&b, "%s\n\n", page.Subheading)
	fmt.Fprintf(&b, "**[%s](#)**\n\n", page.CTAButton)
	for _, f := range page.Features {
		fmt.Fprintf(&b, "- %s **%s**: %s\n", IconLabel(f.Icon), f.Title, f.Description)
	}
	return b.String()
}

// HTML renders entry as an HTML fragment.
func HTML(entry types.HistoryEntry) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(entry)), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
