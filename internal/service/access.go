package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Chendasum/7daymoneyflowreset/internal/domain/entities"
	"github.com/Chendasum/7daymoneyflowreset/internal/repository"
)

// Denial messages. Every denial branch has its own localized text.
const (
	msgRegisterFirst   = "🔒 សូមចុះឈ្មោះជាមុនសិន។ ប្រើ /start ដើម្បីចាប់ផ្តើម។"
	msgPaymentRequired = "🔒 សូមទូទាត់មុនដើម្បីចូលរួមកម្មវិធី។ ប្រើ /pricing ដើម្បីមើលព័ត៌មាន។"
	msgUpgradeFmt      = "%s មុខងារនេះត្រូវការកម្រិតខ្ពស់ជាង។ ប្រើ /pricing ដើម្បីមើលការ upgrade។"
	msgAccessError     = "❌ មានបញ្ហា។ សូមសាកល្បងម្តងទៀត។"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int64) (*entities.User, error)
}

// AccessResult is the outcome of a feature access check.
// Message carries the denial text and is empty when access is granted.
type AccessResult struct {
	HasAccess bool
	UserTier  entities.Tier
	Message   string
	User      *entities.User
}

// TierStatus is a user's resolved tier with its static description.
type TierStatus struct {
	Tier   entities.Tier
	Info   TierInfo
	Badge  string
	Price  float64
	PaidAt *time.Time
}

// AccessService authorizes tier-gated features against the user store.
type AccessService struct {
	users  UserRepo
	tiers  *TierManager
	logger *zap.Logger
}

func NewAccessService(users UserRepo, tiers *TierManager, logger *zap.Logger) *AccessService {
	return &AccessService{
		users:  users,
		tiers:  tiers,
		logger: logger,
	}
}

// CheckAccess decides whether the user may use the feature.
// Unknown users, unpaid users and lookup failures are all denied; a store
// error never grants access.
func (s *AccessService) CheckAccess(ctx context.Context, userID int64, feature Feature) AccessResult {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return AccessResult{
			UserTier: entities.TierFree,
			Message:  msgRegisterFirst,
		}
	}
	if err != nil {
		s.logger.Error("access check lookup failed",
			zap.Int64("user_id", userID),
			zap.String("feature", string(feature)),
			zap.Error(err),
		)
		return AccessResult{
			UserTier: entities.TierFree,
			Message:  msgAccessError,
		}
	}

	if !user.IsPaid {
		return AccessResult{
			UserTier: entities.TierFree,
			Message:  msgPaymentRequired,
		}
	}

	tier := resolveTier(user)
	if !s.tiers.HasFeatureAccess(tier, feature) {
		badge := s.tiers.GetTierBadge(tier)
		return AccessResult{
			UserTier: tier,
			Message:  fmt.Sprintf(msgUpgradeFmt, badge),
		}
	}

	return AccessResult{
		HasAccess: true,
		UserTier:  tier,
		User:      user,
	}
}

// GetUserTierInfo returns the user's current tier with its static description.
// Unknown or unpaid users resolve to the free tier; so do lookup failures.
func (s *AccessService) GetUserTierInfo(ctx context.Context, userID int64) TierStatus {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Error("tier info lookup failed",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return s.freeTierStatus()
	}

	if !user.IsPaid {
		return s.freeTierStatus()
	}

	tier := resolveTier(user)
	return TierStatus{
		Tier:   tier,
		Info:   s.tiers.GetTierInfo(tier),
		Badge:  s.tiers.GetTierBadge(tier),
		Price:  user.TierPrice,
		PaidAt: user.PaymentDate,
	}
}

func (s *AccessService) freeTierStatus() TierStatus {
	return TierStatus{
		Tier:  entities.TierFree,
		Info:  s.tiers.GetTierInfo(entities.TierFree),
		Badge: s.tiers.GetTierBadge(entities.TierFree),
	}
}

// SupportMessage returns the support hint for the user's tier.
func (s *AccessService) SupportMessage(ctx context.Context, userID int64) string {
	return s.tiers.SupportMessage(s.GetUserTierInfo(ctx, userID).Tier)
}

// resolveTier maps a paid user's stored tier to a known one.
// Paid users with no stored tier fall back to the baseline paid tier.
func resolveTier(user *entities.User) entities.Tier {
	if user.Tier == "" || !user.Tier.Valid() {
		return entities.TierEssential
	}
	return user.Tier
}

// TierHelp builds the tier-specific help message.
func (s *AccessService) TierHelp(ctx context.Context, userID int64) string {
	status := s.GetUserTierInfo(ctx, userID)

	isPaid := false
	if user, err := s.users.FindByID(ctx, userID); err == nil {
		isPaid = user.IsPaid
	}

	pricingText := "មើលតម្លៃ ($47)"
	if isPaid {
		pricingText = "មើលតម្លៃ ($47 / $97 / $197)"
	}

	var sb strings.Builder
	sb.WriteString(status.Badge)
	sb.WriteString(" កម្មវិធីផ្លាស់ប្ដូរ 7-Day Money Flow Reset™\n")

	if status.Tier != entities.TierFree {
		sb.WriteString("កម្រិតបច្ចុប្បន្ន: ")
		sb.WriteString(status.Info.Name)
		sb.WriteString("\n")
	}

	sb.WriteString("\n🎯 ពាក្យបញ្ជាទូទៅ\n")
	sb.WriteString("/start - ចាប់ផ្តើមកម្មវិធី\n")
	sb.WriteString("/pricing - " + pricingText + "\n")
	sb.WriteString("/help - ជំនួយនេះ\n")
	sb.WriteString("/whoami - មើលព័ត៌មានគណនី\n")

	sb.WriteString("\n🎯 ការពិនិត្យសុខភាពហិរញ្ញវត្ថុ (ឥតគិតថ្លៃ)\n")
	sb.WriteString("/financial_quiz - ពិនិត្យសុខភាពហិរញ្ញវត្ថុ ២ នាទី\n")
	sb.WriteString("/health_check - ការវាយតម្លៃហិរញ្ញវត្ថុ\n")

	if status.Tier == entities.TierFree {
		sb.WriteString("\n🔒 ចង់ចូលរៀន? ប្រើ /pricing ដើម្បីមើលកម្មវិធី\n")
	} else {
		sb.WriteString("\n🎯 ពាក្យបញ្ជាមេរៀន\n")
		sb.WriteString("/day1 - ថ្ងៃទី១: Money Flow Basics\n")
		sb.WriteString("/day2 - ថ្ងៃទី២: Money Leaks\n")
		sb.WriteString("/day3 - ថ្ងៃទី៣: System Evaluation\n")
		sb.WriteString("/day4 - ថ្ងៃទី៤: Income/Cost Mapping\n")
		sb.WriteString("/day5 - ថ្ងៃទី៥: Survival vs Growth\n")
		sb.WriteString("/day6 - ថ្ងៃទី៦: Action Planning\n")
		sb.WriteString("/day7 - ថ្ងៃទី៧: Integration\n")
	}

	if status.Tier == entities.TierPremium || status.Tier == entities.TierVIP {
		sb.WriteString("\n🚀 មុខងារ Premium\n")
		sb.WriteString("/admin_contact - ទាក់ទងអ្នកគ្រប់គ្រង\n")
	}

	if status.Tier == entities.TierVIP {
		sb.WriteString("\n👑 មុខងារ VIP\n")
		sb.WriteString("/book_session - កក់ពេលជួប 1-on-1\n")
	}

	sb.WriteString("\n🛠 ជំនួយបន្ថែម\n")
	sb.WriteString("មានសំណួរអ្វី? អ្នកអាចសរសេរសារមក ខ្ញុំ")

	return sb.String()
}
