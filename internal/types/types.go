package types

// TechStack is the suggested technology stack for an MVP.
type TechStack struct {
	Frontend string `json:"frontend"`
	Backend  string `json:"backend"`
	Database string `json:"database"`
}

// MVPPlan represents the structure expected from the LLM for the plan stage.
type MVPPlan struct {
	ProjectName            string    `json:"projectName"`
	Summary                string    `json:"summary"`
	CoreFeatures           []string  `json:"coreFeatures"` // 3-5 expected, not enforced
	UserPersonas           []string  `json:"userPersonas"`
	TechStack              TechStack `json:"techStack"`
	UserStories            []string  `json:"userStories"`
	MonetizationStrategies []string  `json:"monetizationStrategies"`
	SuccessMetrics         []string  `json:"successMetrics"`
}

// Icon is the symbolic icon name attached to a landing page feature.
type Icon string

const (
	IconZap         Icon = "zap"
	IconShieldCheck Icon = "shield-check"
	IconUsers       Icon = "users"
	IconGlobe       Icon = "globe"
	IconTrendingUp  Icon = "trending-up"
	IconStar        Icon = "star"

	// DefaultIcon is used wherever an icon outside the known set shows up.
	DefaultIcon = IconStar
)

// Icons lists the closed set of icon names, in the order they are offered to the model.
var Icons = []Icon{IconZap, IconShieldCheck, IconUsers, IconGlobe, IconTrendingUp, IconStar}

// Known reports whether i is one of Icons.
func (i Icon) Known() bool {
	for _, known := range Icons {
		if i == known {
			return true
		}
	}
	return false
}

// OrDefault returns i if it is known, DefaultIcon otherwise.
func (i Icon) OrDefault() Icon {
	if i.Known() {
		return i
	}
	return DefaultIcon
}

// LandingPageFeature is one highlighted feature on the landing page.
type LandingPageFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
}

// LandingPageContent is the marketing copy generated for the landing page.
type LandingPageContent struct {
	Headline   string               `json:"headline"`
	Subheading string               `json:"subheading"`
	CTAButton  string               `json:"ctaButton"`
	Features   []LandingPageFeature `json:"features"` // exactly 3 expected, not enforced
}

// HistoryEntry is one completed generation cycle. Entries are never modified after creation.
type HistoryEntry struct {
	ID                 string             `json:"id"`
	MVPPlan            MVPPlan            `json:"mvpPlan"`
	LandingPageContent LandingPageContent `json:"landingPageContent"`
	CreatedAt          string             `json:"createdAt"` // ISO-8601, UTC
}

// UsageRecord is the persisted per-day generation counter.
type UsageRecord struct {
	Count int    `json:"count"`
	Date  string `json:"date"`
}
