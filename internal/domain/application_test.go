package domain_test

import (
	"testing"

	"go-jobnetwork-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{domain.ApplicationStatusPending, domain.ApplicationStatusReviewed},
		{domain.ApplicationStatusPending, domain.ApplicationStatusAccepted},
		{domain.ApplicationStatusPending, domain.ApplicationStatusRejected},
		{domain.ApplicationStatusReviewed, domain.ApplicationStatusAccepted},
		{domain.ApplicationStatusReviewed, domain.ApplicationStatusRejected},
	}
	for _, tr := range allowed {
		assert.True(t, domain.CanTransition(tr[0], tr[1]), "%s -> %s should be allowed", tr[0], tr[1])
	}

	denied := [][2]string{
		{domain.ApplicationStatusPending, domain.ApplicationStatusPending},
		{domain.ApplicationStatusReviewed, domain.ApplicationStatusPending},
		{domain.ApplicationStatusReviewed, domain.ApplicationStatusReviewed},
		{domain.ApplicationStatusAccepted, domain.ApplicationStatusRejected},
		{domain.ApplicationStatusAccepted, domain.ApplicationStatusPending},
		{domain.ApplicationStatusRejected, domain.ApplicationStatusAccepted},
		{domain.ApplicationStatusRejected, domain.ApplicationStatusReviewed},
	}
	for _, tr := range denied {
		assert.False(t, domain.CanTransition(tr[0], tr[1]), "%s -> %s should be denied", tr[0], tr[1])
	}
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, domain.IsTerminalStatus(domain.ApplicationStatusAccepted))
	assert.True(t, domain.IsTerminalStatus(domain.ApplicationStatusRejected))
	assert.False(t, domain.IsTerminalStatus(domain.ApplicationStatusPending))
	assert.False(t, domain.IsTerminalStatus(domain.ApplicationStatusReviewed))
}
