package service

import "github.com/Chendasum/7daymoneyflowreset/internal/domain/entities"

// Feature is a named capability checked against a user's tier.
type Feature string

const (
	FeatureFinancialQuiz     Feature = "financial_quiz"
	FeatureHealthCheck       Feature = "health_check"
	FeaturePreview           Feature = "preview"
	FeatureCalculators       Feature = "calculators"
	FeatureDailyLessons      Feature = "daily_lessons"
	FeatureQuotes            Feature = "quotes"
	FeatureProgressTracking  Feature = "progress_tracking"
	FeatureAdminContact      Feature = "admin_contact"
	FeaturePrioritySupport   Feature = "priority_support"
	FeatureAdvancedAnalytics Feature = "advanced_analytics"
	FeatureBookingSystem     Feature = "booking_system"
	FeatureCapitalClarity    Feature = "capital_clarity"
	FeatureVIPReports        Feature = "vip_reports"
	FeatureExtendedTracking  Feature = "extended_tracking"
)

// TierInfo describes a single payment tier.
type TierInfo struct {
	Name     string
	Badge    string
	Price    float64
	Features []Feature
}

// TierManager resolves feature access against the static tier table.
type TierManager struct {
	tiers map[entities.Tier]TierInfo
}

func NewTierManager() *TierManager {
	freeFeatures := []Feature{
		FeatureFinancialQuiz,
		FeatureHealthCheck,
		FeaturePreview,
		FeatureCalculators,
	}
	essentialFeatures := concat(freeFeatures,
		FeatureDailyLessons,
		FeatureQuotes,
		FeatureProgressTracking,
	)
	premiumFeatures := concat(essentialFeatures,
		FeatureAdminContact,
		FeaturePrioritySupport,
		FeatureAdvancedAnalytics,
	)
	vipFeatures := concat(premiumFeatures,
		FeatureBookingSystem,
		FeatureCapitalClarity,
		FeatureVIPReports,
		FeatureExtendedTracking,
	)

	return &TierManager{
		tiers: map[entities.Tier]TierInfo{
			entities.TierFree: {
				Name:     "Free",
				Badge:    "🔓",
				Price:    0,
				Features: freeFeatures,
			},
			entities.TierEssential: {
				Name:     "Essential",
				Badge:    "🎯",
				Price:    47,
				Features: essentialFeatures,
			},
			entities.TierPremium: {
				Name:     "Premium",
				Badge:    "🚀",
				Price:    97,
				Features: premiumFeatures,
			},
			entities.TierVIP: {
				Name:     "VIP",
				Badge:    "👑",
				Price:    197,
				Features: vipFeatures,
			},
		},
	}
}

func concat(base []Feature, extra ...Feature) []Feature {
	out := make([]Feature, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

// HasFeatureAccess reports whether the tier includes the feature.
// Unknown tiers have no access to anything.
func (m *TierManager) HasFeatureAccess(tier entities.Tier, feature Feature) bool {
	info, ok := m.tiers[tier]
	if !ok {
		return false
	}

	for _, f := range info.Features {
		if f == feature {
			return true
		}
	}

	return false
}

// GetTierBadge returns the badge emoji for a tier.
func (m *TierManager) GetTierBadge(tier entities.Tier) string {
	return m.GetTierInfo(tier).Badge
}

// GetTierInfo returns the static description of a tier.
// Unknown tiers resolve to the free tier.
func (m *TierManager) GetTierInfo(tier entities.Tier) TierInfo {
	info, ok := m.tiers[tier]
	if !ok {
		return m.tiers[entities.TierFree]
	}
	return info
}

// SupportMessage returns the tier-specific support hint.
func (m *TierManager) SupportMessage(tier entities.Tier) string {
	switch tier {
	case entities.TierEssential:
		return "🎯 ប្រើ /help សម្រាប់ការជំនួយ ឬសរសេរសំណួរមកដោយផ្ទាល់។"
	case entities.TierPremium:
		return "🚀 អ្នកទទួលបានការជំនួយពិសេស! ប្រើ /admin_contact ដើម្បីទាក់ទងអ្នកគ្រប់គ្រង។"
	case entities.TierVIP:
		return "👑 អ្នកទទួលបានការបម្រើពិសេស! ប្រើ /book_session ដើម្បីកក់ពេលជួប 1-on-1។"
	default:
		return "🔓 សូមទូទាត់ដើម្បីទទួលបានការជំនួយពេញលេញ។"
	}
}
