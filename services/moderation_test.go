package services

import (
	"testing"

	"github.com/inkforge/inkforge-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestPolicyDecide(t *testing.T) {
	policy := Policy{MinAutoApproveScore: 80}

	t.Run("pending with high score and no flag is auto-approved", func(t *testing.T) {
		got := policy.Decide(models.StatusPending, Verdict{Score: 92, Flagged: false})
		assert.Equal(t, models.StatusApproved, got)
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		got := policy.Decide(models.StatusPending, Verdict{Score: 80, Flagged: false})
		assert.Equal(t, models.StatusApproved, got)
	})

	t.Run("score below threshold stays pending", func(t *testing.T) {
		got := policy.Decide(models.StatusPending, Verdict{Score: 79, Flagged: false})
		assert.Equal(t, models.StatusPending, got)
	})

	t.Run("flagged content never auto-approves", func(t *testing.T) {
		got := policy.Decide(models.StatusPending, Verdict{Score: 100, Flagged: true})
		assert.Equal(t, models.StatusPending, got)
	})

	t.Run("drafts are never auto-published", func(t *testing.T) {
		got := policy.Decide(models.StatusDraft, Verdict{Score: 100, Flagged: false})
		assert.Equal(t, models.StatusDraft, got)
	})

	t.Run("non-pending statuses pass through unchanged", func(t *testing.T) {
		got := policy.Decide(models.StatusApproved, Verdict{Score: 10})
		assert.Equal(t, models.StatusApproved, got)
	})
}

func TestNewPolicy(t *testing.T) {
	t.Run("reads threshold from config", func(t *testing.T) {
		policy := NewPolicy(map[string]string{"AUTO_APPROVE_MIN_SCORE": "90"})
		assert.Equal(t, 90, policy.MinAutoApproveScore)
	})

	t.Run("defaults to 80", func(t *testing.T) {
		policy := NewPolicy(map[string]string{})
		assert.Equal(t, 80, policy.MinAutoApproveScore)
	})
}
