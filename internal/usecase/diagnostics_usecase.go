package usecase

import (
	"context"

	"meatly/internal/domain/entity"
)

// Classification names the four consistency states a phone number can be in,
// derived from which of the identity and profile rows exist.
type Classification string

const (
	// ClassificationNormal: both rows exist; the account is healthy.
	ClassificationNormal Classification = "normal"

	// ClassificationAvailable: neither row exists; the number is free to register.
	ClassificationAvailable Classification = "available"

	// ClassificationOrphanedProfile: a profile without its identity. The
	// registration path can never be completed for this number until repaired.
	ClassificationOrphanedProfile Classification = "orphaned_profile"

	// ClassificationOrphanedIdentity: an identity without its projection.
	ClassificationOrphanedIdentity Classification = "orphaned_identity"
)

// DiagnosisReport is the outcome of classifying one phone number.
type DiagnosisReport struct {
	Phone          string
	Classification Classification
	Identity       *entity.Identity // nil unless an identity row exists
	Profile        *entity.Profile  // nil unless a profile row exists
}

// RepairStep records one deletion or creation performed during repair.
type RepairStep struct {
	Target string // e.g. "sessions", "profile"
	Done   bool
	Err    error
}

// RepairResult aggregates the steps of a repair run. Repair continues past
// individual failures, so a partially failed run still reports every step.
type RepairResult struct {
	Phone          string
	Classification Classification
	Steps          []RepairStep
}

// Succeeded reports whether every step completed.
func (r *RepairResult) Succeeded() bool {
	for _, step := range r.Steps {
		if step.Err != nil {
			return false
		}
	}

	return true
}

// DiagnosticsUsecase inspects and repairs identity/profile consistency.
type DiagnosticsUsecase interface {
	// Diagnose classifies the state of a phone number without modifying it.
	Diagnose(ctx context.Context, phone string) (*DiagnosisReport, error)

	// Repair fixes an orphaned state. An orphaned profile is cleaned up by
	// removing all records tied to it in dependency order; an orphaned
	// identity is healed by re-synthesizing its profile projection. Healthy
	// and vacant states are left untouched.
	Repair(ctx context.Context, phone string) (*RepairResult, error)
}
