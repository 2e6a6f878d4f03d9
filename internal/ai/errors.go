package ai

import (
	"errors"
	"fmt"
)

// Stage names the generation call that failed.
type Stage string

const (
	StagePlan        Stage = "MVP plan"
	StageLandingPage Stage = "landing page content"
)

var (
	ErrEmptyIdea     = errors.New("business idea is empty")
	ErrEmptyResponse = errors.New("openai returned empty response")
)

// GenerationError is the single failure type of both generation calls. The
// cause (transport, empty reply, malformed or non-conforming JSON) is kept for
// logging only.
type GenerationError struct {
	Stage Stage
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
