package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chendasum/7daymoneyflowreset/internal/domain/entities"
)

func answerSet(income, expenses, debt, savings float64, goal entities.Goal) map[int]entities.Option {
	return map[int]entities.Option{
		1: {Amount: income},
		2: {Amount: expenses},
		3: {Amount: debt},
		4: {Amount: savings},
		5: {Goal: goal},
	}
}

func TestScoreHealthyProfile(t *testing.T) {
	report := Score(answerSet(1000, 700, 0, 1000, entities.GoalSave))

	assert.Equal(t, 90, report.Score)
	assert.Equal(t, HealthBest, report.Health)
	assert.InDelta(t, 30.0, report.SavingsRate, 0.001)
	assert.InDelta(t, 2100.0, report.EmergencyTarget, 0.001)
	assert.InDelta(t, 0.0, report.DebtRatio, 0.001)
	// Savings rate, no debt, income over expenses.
	assert.Len(t, report.Strengths, 3)
}

func TestScoreIsDeterministic(t *testing.T) {
	answers := answerSet(600, 400, 500, 100, entities.GoalDebt)

	first := Score(answers)
	second := Score(answers)

	assert.Equal(t, first, second)
}

func TestScoreAlwaysWithinBounds(t *testing.T) {
	goals := []entities.Goal{entities.GoalEmergency, entities.GoalDebt, entities.GoalSave, entities.GoalInvest}

	for _, q1 := range quizQuestions[0].Options {
		for _, q2 := range quizQuestions[1].Options {
			for _, q3 := range quizQuestions[2].Options {
				for _, q4 := range quizQuestions[3].Options {
					for _, goal := range goals {
						report := Score(answerSet(q1.Amount, q2.Amount, q3.Amount, q4.Amount, goal))
						require.GreaterOrEqual(t, report.Score, 0)
						require.LessOrEqual(t, report.Score, 100)
					}
				}
			}
		}
	}
}

func TestScoreDefaultsMissingAnswers(t *testing.T) {
	report := Score(map[int]entities.Option{})

	// All amounts default to 0, goal defaults to saving.
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
	assert.Contains(t, report.Recommendations, "💡 ផ្តោតលើការបង្កើនការសន្សំប្រចាំខែ")
}

func TestScoreGoalContributesAtMostOneRecommendation(t *testing.T) {
	base := Score(answerSet(300, 1000, 5000, 0, entities.GoalSave))
	withGoal := Score(answerSet(300, 1000, 5000, 0, entities.GoalDebt))

	assert.LessOrEqual(t, len(withGoal.Recommendations), len(base.Recommendations)+1)
}

func TestHealthLevelThresholds(t *testing.T) {
	assert.Equal(t, HealthBest, healthLevel(80))
	assert.Equal(t, HealthGood, healthLevel(60))
	assert.Equal(t, HealthNeedsImprovement, healthLevel(40))
	assert.Equal(t, HealthNeedsDevelopment, healthLevel(39))
}
