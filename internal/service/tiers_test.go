package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chendasum/7daymoneyflowreset/internal/domain/entities"
)

func TestTierFeatureTable(t *testing.T) {
	m := NewTierManager()

	assert.True(t, m.HasFeatureAccess(entities.TierFree, FeatureFinancialQuiz))
	assert.False(t, m.HasFeatureAccess(entities.TierFree, FeatureDailyLessons))

	assert.True(t, m.HasFeatureAccess(entities.TierEssential, FeatureDailyLessons))
	assert.False(t, m.HasFeatureAccess(entities.TierEssential, FeaturePrioritySupport))

	assert.True(t, m.HasFeatureAccess(entities.TierPremium, FeaturePrioritySupport))
	assert.False(t, m.HasFeatureAccess(entities.TierPremium, FeatureBookingSystem))

	// VIP includes everything below it.
	for _, f := range m.GetTierInfo(entities.TierPremium).Features {
		assert.True(t, m.HasFeatureAccess(entities.TierVIP, f))
	}
	assert.True(t, m.HasFeatureAccess(entities.TierVIP, FeatureBookingSystem))
}

func TestTierUnknownTierHasNoAccess(t *testing.T) {
	m := NewTierManager()

	assert.False(t, m.HasFeatureAccess(entities.Tier("platinum"), FeatureFinancialQuiz))
	assert.Equal(t, m.GetTierInfo(entities.TierFree), m.GetTierInfo(entities.Tier("platinum")))
}

func TestTierBadges(t *testing.T) {
	m := NewTierManager()

	assert.Equal(t, "🔓", m.GetTierBadge(entities.TierFree))
	assert.Equal(t, "🎯", m.GetTierBadge(entities.TierEssential))
	assert.Equal(t, "🚀", m.GetTierBadge(entities.TierPremium))
	assert.Equal(t, "👑", m.GetTierBadge(entities.TierVIP))
}
