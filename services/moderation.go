package services

import (
	"github.com/inkforge/inkforge-backend/config"
	"github.com/inkforge/inkforge-backend/models"
)

const defaultAutoApproveMinScore = 80

// Policy holds the auto-approval parameters. The threshold is configuration,
// not a literal: the product intent is "auto-approve high-quality content"
// and what counts as high quality is tunable.
type Policy struct {
	MinAutoApproveScore int
}

// NewPolicy reads the moderation parameters from configuration.
func NewPolicy(cfg map[string]string) Policy {
	return Policy{
		MinAutoApproveScore: config.GetInt(cfg, "AUTO_APPROVE_MIN_SCORE", defaultAutoApproveMinScore),
	}
}

// Decide maps an author's submitted status and a classifier verdict to the
// blog's resulting status. Pure: no clock, no storage.
//
// Drafts are never auto-published; classification still runs for later
// display but the status stays draft. A pending submission clears review
// immediately when the verdict meets the score bar and is not flagged;
// otherwise it waits for an admin.
func (p Policy) Decide(submitted models.BlogStatus, verdict Verdict) models.BlogStatus {
	if submitted != models.StatusPending {
		return submitted
	}
	if verdict.Score >= p.MinAutoApproveScore && !verdict.Flagged {
		return models.StatusApproved
	}
	return models.StatusPending
}
