package entities

import "time"

// Option is one selectable answer for a quiz question.
// The financial questions carry a numeric weight, the goal question a goal tag.
type Option struct {
	Amount float64
	Goal   Goal
	Label  string
}

// Question is one fixed quiz question. Option order is the user-facing
// 1-based answer numbering and is never reordered mid-session.
type Question struct {
	ID      int
	Prompt  string
	Options []Option
}

// QuizSession tracks a single user's progress through the quiz.
// Sessions live in memory only; an abandoned session is purged by TTL.
type QuizSession struct {
	UserID    int64
	Current   int  // 1-based index of the question being answered
	Ready     bool // false until the user confirms with the ready keyword
	Answers   map[int]Option
	StartedAt time.Time
}

// NewQuizSession creates a fresh session positioned at the first question.
func NewQuizSession(userID int64) *QuizSession {
	return &QuizSession{
		UserID:    userID,
		Current:   1,
		Answers:   make(map[int]Option),
		StartedAt: time.Now(),
	}
}

// Record stores the chosen option for a question and advances to the next one.
func (s *QuizSession) Record(questionID int, o Option) {
	s.Answers[questionID] = o
	s.Current++
}
