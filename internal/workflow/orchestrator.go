// Package workflow runs one generation cycle at a time: gate check, plan,
// landing page, then history and usage bookkeeping.
package workflow

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"mvp_launchpad/internal/types"
)

// UserFacingError is the only error text shown for a failed generation.
const UserFacingError = "Something went wrong while generating the plan. Please try again."

var (
	ErrEmptyIdea    = errors.New("business idea is required")
	ErrBusy         = errors.New("a generation is already in progress")
	ErrLimitReached = errors.New("daily generation limit reached")
)

// Status is the orchestrator's state.
type Status int

const (
	StatusIdle Status = iota
	StatusGenerating
)

func (s Status) String() string {
	switch s {
	case StatusGenerating:
		return "generating"
	default:
		return "idle"
	}
}

// Generator produces the two halves of a result. Implemented by *ai.Generator.
type Generator interface {
	GeneratePlan(ctx context.Context, idea string) (types.MVPPlan, error)
	GenerateLandingPage(ctx context.Context, idea string, plan types.MVPPlan) (types.LandingPageContent, error)
}

// Recorder stores completed results. Implemented by *history.Store.
type Recorder interface {
	Add(ctx context.Context, plan types.MVPPlan, content types.LandingPageContent) types.HistoryEntry
	Entries() []types.HistoryEntry
}

// Gate enforces the daily quota. Implemented by *usage.Tracker.
type Gate interface {
	IsLimitReached(ctx context.Context) bool
	Increment(ctx context.Context) int
	Count(ctx context.Context) int
	Limit() int
}

// Orchestrator allows a single generation in flight. Submissions made while
// one is running, or once the daily limit is hit, are rejected, not queued.
type Orchestrator struct {
	gen     Generator
	history Recorder
	gate    Gate

	mu      sync.Mutex
	status  Status
	lastErr error
}

func NewOrchestrator(gen Generator, history Recorder, gate Gate) *Orchestrator {
	return &Orchestrator{gen: gen, history: history, gate: gate}
}

// Submit runs one full cycle for idea. Either both stages succeed and exactly
// one history entry is recorded, or nothing is recorded.
//
// The returned error is ErrEmptyIdea, ErrBusy or ErrLimitReached when the
// submission was ignored, or the *ai.GenerationError of the failed stage.
func (o *Orchestrator) Submit(ctx context.Context, idea string) (types.HistoryEntry, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return types.HistoryEntry{}, ErrEmptyIdea
	}

	if err := o.begin(ctx); err != nil {
		return types.HistoryEntry{}, err
	}

	var runErr error
	defer func() { o.finish(runErr) }()

	// In-flight calls run to completion even if the caller goes away.
	callCtx := context.WithoutCancel(ctx)

	plan, err := o.gen.GeneratePlan(callCtx, idea)
	if err != nil {
		runErr = err
		log.Printf("ERROR: Plan generation failed: %v", err)
		return types.HistoryEntry{}, err
	}

	content, err := o.gen.GenerateLandingPage(callCtx, idea, plan)
	if err != nil {
		runErr = err
		log.Printf("ERROR: Landing page generation failed for %q: %v", plan.ProjectName, err)
		return types.HistoryEntry{}, err
	}

	entry := o.history.Add(callCtx, plan, content)
	count := o.gate.Increment(callCtx)
	log.Printf("Generation %s complete for %q (usage %d/%d)", entry.ID, plan.ProjectName, count, o.gate.Limit())
	return entry, nil
}

func (o *Orchestrator) begin(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status == StatusGenerating {
		return ErrBusy
	}
	if o.gate.IsLimitReached(ctx) {
		return ErrLimitReached
	}
	o.status = StatusGenerating
	o.lastErr = nil
	return nil
}

func (o *Orchestrator) finish(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status = StatusIdle
	o.lastErr = err
}

// Status reports whether a generation is in flight.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// View is what the presentation layer renders.
type View struct {
	Status     string               `json:"status"` // idle, generating, error or limit-reached
	Error      string               `json:"error,omitempty"`
	UsageCount int                  `json:"usageCount"`
	UsageLimit int                  `json:"usageLimit"`
	Latest     *types.HistoryEntry  `json:"latest"`
	History    []types.HistoryEntry `json:"history"`
}

// Snapshot assembles the current View.
func (o *Orchestrator) Snapshot(ctx context.Context) View {
	o.mu.Lock()
	status, lastErr := o.status, o.lastErr
	o.mu.Unlock()

	v := View{
		UsageCount: o.gate.Count(ctx),
		UsageLimit: o.gate.Limit(),
		History:    o.history.Entries(),
	}
	if len(v.History) > 0 {
		latest := v.History[0]
		v.Latest = &latest
	}

	switch {
	case status == StatusGenerating:
		v.Status = "generating"
	case lastErr != nil:
		v.Status = "error"
		v.Error = UserFacingError
	case v.UsageCount >= v.UsageLimit:
		v.Status = "limit-reached"
	default:
		v.Status = "idle"
	}
	return v
}
