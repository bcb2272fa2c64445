package service

import (
	"fmt"

	"github.com/Chendasum/7daymoneyflowreset/internal/domain/entities"
)

// HealthLevel buckets the overall score into a health label.
type HealthLevel int

const (
	HealthNeedsDevelopment HealthLevel = iota
	HealthNeedsImprovement
	HealthGood
	HealthBest
)

// Label returns the localized health label.
func (l HealthLevel) Label() string {
	switch l {
	case HealthBest:
		return "ល្អបំផុត"
	case HealthGood:
		return "ល្អ"
	case HealthNeedsImprovement:
		return "ត្រូវកែលម្អ"
	default:
		return "ត្រូវការអភិវឌ្ឍន៍"
	}
}

// Emoji returns the traffic-light marker for the level.
func (l HealthLevel) Emoji() string {
	switch l {
	case HealthBest:
		return "🟢"
	case HealthGood:
		return "🟡"
	case HealthNeedsImprovement:
		return "🟠"
	default:
		return "🔴"
	}
}

// ScoreReport is the computed result of a completed quiz.
// It is derived, never stored; recomputing from the same answers is idempotent.
type ScoreReport struct {
	Score           int
	SavingsRate     float64
	EmergencyTarget float64
	DebtRatio       float64
	Strengths       []string
	Recommendations []string
	Health          HealthLevel
}

// Score computes the financial health score from a completed answer set.
// Missing numeric answers count as 0 and a missing goal defaults to saving;
// the quiz flow should never produce either.
func Score(answers map[int]entities.Option) ScoreReport {
	income := answers[1].Amount
	expenses := answers[2].Amount
	debt := answers[3].Amount
	savings := answers[4].Amount

	goal := answers[5].Goal
	if goal == "" {
		goal = entities.GoalSave
	}

	var savingsRate, debtRatio float64
	if income > 0 {
		savingsRate = (income - expenses) / income * 100
		debtRatio = debt / income * 100
	}
	emergencyTarget := expenses * 3

	score := 0
	var strengths []string
	var recommendations []string

	switch {
	case savingsRate >= 20:
		score += 25
		strengths = append(strengths, "💪 អត្រាសន្សំល្អ")
	case savingsRate >= 10:
		score += 15
	case savingsRate > 0:
		score += 10
	}

	switch {
	case savings >= emergencyTarget:
		score += 30
		strengths = append(strengths, "🛡️ Emergency Fund គ្រប់គ្រាន់")
	case savings >= expenses:
		score += 20
	case savings > 0:
		score += 10
	}

	switch {
	case debt == 0:
		score += 25
		strengths = append(strengths, "✅ គ្មានបំណុល")
	case debtRatio < 30:
		score += 15
	case debtRatio < 50:
		score += 10
	}

	if income > expenses {
		score += 20
		strengths = append(strengths, "📈 ចំណូលលើសចំណាយ")
	}

	if savingsRate < 10 {
		recommendations = append(recommendations, "🎯 បង្កើនអត្រាសន្សំដល់ ២០% នៃចំណូល")
	}
	if savings < emergencyTarget {
		recommendations = append(recommendations,
			fmt.Sprintf("🚨 បង្កើត Emergency Fund $%.0f", emergencyTarget))
	}
	if debt > 0 {
		recommendations = append(recommendations, "💳 ធ្វើផែនការសងបំណុល")
	}
	if income <= expenses {
		recommendations = append(recommendations, "⚡ ត្រូវការផែនការកែលម្អចំណូល")
	}

	// At most one extra recommendation targeted at the stated goal.
	switch {
	case goal == entities.GoalEmergency && savings < emergencyTarget:
		recommendations = append(recommendations, "💡 ផ្តោតលើការបង្កើតមូលនិធិបន្ទាន់")
	case goal == entities.GoalDebt && debt > 0:
		recommendations = append(recommendations, "💡 ផ្តោតលើការសងបំណុលជាអាទិភាព")
	case goal == entities.GoalSave && savingsRate < 20:
		recommendations = append(recommendations, "💡 ផ្តោតលើការបង្កើនការសន្សំប្រចាំខែ")
	case goal == entities.GoalInvest && savings < emergencyTarget:
		recommendations = append(recommendations, "💡 មុនវិនិយោគ សូមបង្កើតមូលនិធិបន្ទាន់សិន")
	}

	return ScoreReport{
		Score:           score,
		SavingsRate:     savingsRate,
		EmergencyTarget: emergencyTarget,
		DebtRatio:       debtRatio,
		Strengths:       strengths,
		Recommendations: recommendations,
		Health:          healthLevel(score),
	}
}

func healthLevel(score int) HealthLevel {
	switch {
	case score >= 80:
		return HealthBest
	case score >= 60:
		return HealthGood
	case score >= 40:
		return HealthNeedsImprovement
	default:
		return HealthNeedsDevelopment
	}
}
