package domain

import "errors"

var (
	// ErrNoEligibleTemplates is a configuration error: the user has no area
	// that matches any template in the catalog.
	ErrNoEligibleTemplates = errors.New("no eligible templates")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrSwapUnavailable     = errors.New("swap unavailable")
	ErrNoActiveAssignment  = errors.New("no active assignment")
	ErrOnboardingRequired  = errors.New("onboarding required")
	ErrPremiumRequired     = errors.New("premium required")
	ErrInvalidInput        = errors.New("invalid input")
)
