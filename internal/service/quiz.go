package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Chendasum/7daymoneyflowreset/internal/domain/entities"
)

const readyKeyword = "READY"

// quizQuestions is the fixed financial health quiz.
// Option order is the user-facing 1-based answer numbering.
var quizQuestions = []entities.Question{
	{
		ID:     1,
		Prompt: "💰 ចំណូលប្រចាំខែរបស់អ្នកប្រហែលប៉ុន្មាន?",
		Options: []entities.Option{
			{Amount: 300, Label: "ក្រោម $300"},
			{Amount: 600, Label: "$300-$600"},
			{Amount: 1000, Label: "$600-$1000"},
			{Amount: 1500, Label: "លើស $1000"},
		},
	},
	{
		ID:     2,
		Prompt: "🏠 ចំណាយប្រចាំខែរបស់អ្នកប្រហែលប៉ុន្មាន?",
		Options: []entities.Option{
			{Amount: 200, Label: "ក្រោម $200"},
			{Amount: 400, Label: "$200-$400"},
			{Amount: 700, Label: "$400-$700"},
			{Amount: 1000, Label: "លើស $700"},
		},
	},
	{
		ID:     3,
		Prompt: "💳 តើអ្នកមានបំណុលអ្វីខ្លះទេ?",
		Options: []entities.Option{
			{Amount: 0, Label: "គ្មានបំណុល"},
			{Amount: 500, Label: "បំណុលតិចៗ (<$500)"},
			{Amount: 2000, Label: "បំណុលមធ្យម ($500-$2000)"},
			{Amount: 5000, Label: "បំណុលច្រើន (>$2000)"},
		},
	},
	{
		ID:     4,
		Prompt: "🏦 តើអ្នកមានលុយសន្សំប៉ុន្មាន?",
		Options: []entities.Option{
			{Amount: 0, Label: "គ្មានសន្សំ"},
			{Amount: 100, Label: "តិចជាង $100"},
			{Amount: 500, Label: "$100-$500"},
			{Amount: 1000, Label: "លើស $500"},
		},
	},
	{
		ID:     5,
		Prompt: "🎯 គោលដៅហិរញ្ញវត្ថុចម្បងរបស់អ្នកជាអ្វី?",
		Options: []entities.Option{
			{Goal: entities.GoalEmergency, Label: "បង្កើត Emergency Fund"},
			{Goal: entities.GoalDebt, Label: "ការពារបំណុល"},
			{Goal: entities.GoalSave, Label: "សន្សំលុយបន្ថែម"},
			{Goal: entities.GoalInvest, Label: "ចាប់ផ្តើមវិនិយោគ"},
		},
	},
}

const quizIntro = `🎯 ការពិនិត្យសុខភាពហិរញ្ញវត្ថុដោយឥតគិតថ្លៃ

ស្វែងយល់ពីស្ថានភាពហិរញ្ញវត្ថុរបស់អ្នកក្នុង ២ នាទី

✅ បញ្ចប់ហើយអ្នកនឹងទទួលបាន:
• ពិន្ទុសុខភាពហិរញ្ញវត្ថុ /១០០
• ការវិភាគផ្ទាល់ខ្លួន
• គន្លឹះកែលម្អ ៣ យ៉ាង
• ផែនការសកម្មភាពឥតគិតថ្លៃ

🚀 តោះចាប់ផ្តើម!

សរសេរ "READY" ដើម្បីចាប់ផ្តើម Quiz`

const quizAwaitingReady = `សរសេរ "READY" ដើម្បីចាប់ផ្តើម Quiz`

const quizFollowUp = `🎁 រឿងពិសេសសម្រាប់អ្នក:

អ្នកបានបញ្ចប់ Quiz រួចហើយ! នេះបង្ហាញថាអ្នកពិតជាចង់កែលម្អហិរញ្ញវត្ថុ។

🔥 កម្មវិធី 7-Day Money Flow Reset™ អាចជួយអ្នក:
✅ កែលម្អពិន្ទុ Financial Health ដល់ ៨០+
✅ បង្កើនអត្រាសន្សំ ២-៣ ដង
✅ សន្សំបាន $300-800 ក្នុង ៣០ ថ្ងៃ
✅ ទទួលបានផែនការជាក់ស្តែង

ចង់ដឹងបន្ថែម? ប្រើ /pricing ឬ /preview`

// SessionStore owns active quiz sessions.
type SessionStore interface {
	Put(sess *entities.QuizSession)
	Get(userID int64) *entities.QuizSession
	Delete(userID int64)
}

// QuizService drives users through the financial health quiz.
type QuizService struct {
	sessions SessionStore
}

func NewQuizService(sessions SessionStore) *QuizService {
	return &QuizService{sessions: sessions}
}

// Start begins the quiz for a user, overwriting any previous session,
// and returns the intro message.
func (s *QuizService) Start(userID int64) string {
	s.sessions.Put(entities.NewQuizSession(userID))
	return quizIntro
}

// IsQuizMessage reports whether a message should be routed to the quiz:
// either the user is mid-quiz, or the text is a quiz entry keyword.
func (s *QuizService) IsQuizMessage(userID int64, text string) bool {
	if s.sessions.Get(userID) != nil {
		return true
	}

	upper := strings.ToUpper(strings.TrimSpace(text))
	return upper == readyKeyword || upper == "START QUIZ" || strings.Contains(upper, "QUIZ")
}

// HandleMessage processes a message from a user with an active session.
// It returns the replies to send, the follow-up text to deliver later when
// the quiz just completed, and whether the message was consumed.
func (s *QuizService) HandleMessage(userID int64, text string) (replies []string, followUp string, handled bool) {
	sess := s.sessions.Get(userID)
	if sess == nil {
		return nil, "", false
	}

	trimmed := strings.TrimSpace(text)

	if !sess.Ready {
		if strings.EqualFold(trimmed, readyKeyword) {
			sess.Ready = true
			return []string{questionText(1)}, "", true
		}
		// Anything else before READY is not an answer to a question the
		// user has not seen yet.
		return []string{quizAwaitingReady}, "", true
	}

	question := quizQuestions[sess.Current-1]

	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > len(question.Options) {
		return []string{invalidAnswerText(len(question.Options))}, "", true
	}

	sess.Record(question.ID, question.Options[n-1])

	if sess.Current <= len(quizQuestions) {
		return []string{questionText(sess.Current)}, "", true
	}

	report := Score(sess.Answers)
	s.sessions.Delete(userID)

	return []string{resultText(report)}, quizFollowUp, true
}

func questionText(num int) string {
	question := quizQuestions[num-1]

	var options strings.Builder
	for i, opt := range question.Options {
		if i > 0 {
			options.WriteString("\n")
		}
		options.WriteString(fmt.Sprintf("%d. %s", i+1, opt.Label))
	}

	return fmt.Sprintf(
		"📝 សំណួរទី %d/%d:\n\n%s\n\n%s\n\nសរសេរលេខចម្លើយរបស់អ្នក (1-%d):",
		num, len(quizQuestions), question.Prompt, options.String(), len(question.Options),
	)
}

func invalidAnswerText(optionCount int) string {
	return fmt.Sprintf("សូមបញ្ចូលលេខចម្លើយត្រឹមត្រូវ (1-%d)។", optionCount)
}

func resultText(r ScoreReport) string {
	var sb strings.Builder

	sb.WriteString("📊 លទ្ធផល Financial Health Check របស់អ្នក:\n\n")
	sb.WriteString(fmt.Sprintf("%s ពិន្ទុ: %d/100 (%s)\n\n", r.Health.Emoji(), r.Score, r.Health.Label()))

	sb.WriteString("📈 ការវិភាគលម្អិត:\n")
	sb.WriteString(fmt.Sprintf("💰 អត្រាសន្សំ: %.1f%%\n", r.SavingsRate))
	sb.WriteString(fmt.Sprintf("🚨 Emergency Fund ត្រូវការ: $%.0f\n", r.EmergencyTarget))
	sb.WriteString(fmt.Sprintf("💳 Debt-to-Income Ratio: %.1f%%\n", r.DebtRatio))

	if len(r.Strengths) > 0 {
		sb.WriteString("\n💪 ចំណុចខ្លាំង:\n")
		sb.WriteString(strings.Join(r.Strengths, "\n"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n🎯 ការណែនាំចម្បង:\n")
	if len(r.Recommendations) > 0 {
		sb.WriteString(strings.Join(r.Recommendations, "\n"))
	} else {
		sb.WriteString("✅ អ្នកកំពុងធ្វើបានល្អ!")
	}

	sb.WriteString("\n\n🚀 ជំហានបន្ទាប់:\n")
	sb.WriteString("• មើលកម្មវិធីពេញលេញ: /pricing\n")
	sb.WriteString("• ការមើលជាមុន: /preview\n\n")
	sb.WriteString("💡 ចង់ដឹងកម្មវិធីអាចជួយអ្នកយ៉ាងម៉េច? ប្រើ /preview")

	return sb.String()
}
