package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chendasum/7daymoneyflowreset/internal/storage"
)

func newTestQuiz(t *testing.T) (*QuizService, *storage.SessionStore) {
	t.Helper()
	store := storage.NewSessionStore()
	return NewQuizService(store), store
}

func TestQuizStartCreatesSession(t *testing.T) {
	quiz, store := newTestQuiz(t)

	intro := quiz.Start(7)

	assert.Contains(t, intro, "READY")
	sess := store.Get(7)
	require.NotNil(t, sess)
	assert.Equal(t, 1, sess.Current)
	assert.False(t, sess.Ready)
}

func TestQuizStartOverwritesPreviousSession(t *testing.T) {
	quiz, store := newTestQuiz(t)

	quiz.Start(7)
	_, _, _ = quiz.HandleMessage(7, "READY")
	_, _, _ = quiz.HandleMessage(7, "1")
	require.Equal(t, 2, store.Get(7).Current)

	quiz.Start(7)

	sess := store.Get(7)
	assert.Equal(t, 1, sess.Current)
	assert.Empty(t, sess.Answers)
}

func TestQuizRequiresReadyKeyword(t *testing.T) {
	quiz, store := newTestQuiz(t)
	quiz.Start(7)

	// An answer before READY must not be recorded.
	replies, followUp, handled := quiz.HandleMessage(7, "2")

	require.True(t, handled)
	assert.Empty(t, followUp)
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "READY")
	assert.Empty(t, store.Get(7).Answers)

	replies, _, handled = quiz.HandleMessage(7, "ready")
	require.True(t, handled)
	assert.Contains(t, replies[0], "1/5")
}

func TestQuizInvalidAnswerKeepsSessionUnchanged(t *testing.T) {
	quiz, store := newTestQuiz(t)
	quiz.Start(7)
	_, _, _ = quiz.HandleMessage(7, "READY")

	for _, input := range []string{"5", "0", "abc", ""} {
		replies, followUp, handled := quiz.HandleMessage(7, input)

		require.True(t, handled, "input %q", input)
		assert.Empty(t, followUp)
		require.Len(t, replies, 1)
		assert.Contains(t, replies[0], "(1-4)")

		sess := store.Get(7)
		assert.Equal(t, 1, sess.Current, "input %q must not advance", input)
		assert.Empty(t, sess.Answers, "input %q must not record an answer", input)
	}
}

func TestQuizAdvancesOneQuestionAtATime(t *testing.T) {
	quiz, store := newTestQuiz(t)
	quiz.Start(7)
	_, _, _ = quiz.HandleMessage(7, "READY")

	for i := 1; i < len(quizQuestions); i++ {
		require.Equal(t, i, store.Get(7).Current)

		replies, followUp, handled := quiz.HandleMessage(7, "1")

		require.True(t, handled)
		assert.Empty(t, followUp)
		require.Len(t, replies, 1)
		assert.Equal(t, i+1, store.Get(7).Current)
	}
}

func TestQuizCompletionReportsAndDeletesSession(t *testing.T) {
	quiz, store := newTestQuiz(t)
	quiz.Start(7)
	_, _, _ = quiz.HandleMessage(7, "READY")

	answers := []string{"4", "4", "1", "4", "3"}
	var replies []string
	var followUp string
	for _, a := range answers {
		replies, followUp, _ = quiz.HandleMessage(7, a)
	}

	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "90/100")
	assert.NotEmpty(t, followUp, "completion must yield the deferred follow-up")
	assert.Nil(t, store.Get(7), "session must be removed after reporting")

	// Next message is no longer part of a quiz.
	_, _, handled := quiz.HandleMessage(7, "1")
	assert.False(t, handled)
}

func TestQuizIsQuizMessage(t *testing.T) {
	quiz, _ := newTestQuiz(t)

	assert.True(t, quiz.IsQuizMessage(7, "READY"))
	assert.True(t, quiz.IsQuizMessage(7, "start quiz"))
	assert.True(t, quiz.IsQuizMessage(7, "what is this Quiz about?"))
	assert.False(t, quiz.IsQuizMessage(7, "hello"))

	// Any text is consumed while a session is active.
	quiz.Start(7)
	assert.True(t, quiz.IsQuizMessage(7, "hello"))
}

func TestQuizQuestionTextListsOptions(t *testing.T) {
	text := questionText(1)

	assert.True(t, strings.Contains(text, "1. ") && strings.Contains(text, "4. "))
	assert.Contains(t, text, quizQuestions[0].Prompt)
}
