package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShortTextUnchanged(t *testing.T) {
	text := "hello\nworld"

	chunks := SplitMessage(text, MaxMessageLength)

	require.Equal(t, []string{text}, chunks)
}

func TestSplitMessageEmptyInput(t *testing.T) {
	chunks := SplitMessage("", MaxMessageLength)

	require.Equal(t, []string{""}, chunks)
}

func TestSplitMessageForceSplitsLongWord(t *testing.T) {
	text := strings.Repeat("a", 9000)

	chunks := SplitMessage(text, 4096)

	require.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 4096)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitMessagePreservesLineBoundaries(t *testing.T) {
	line := strings.Repeat("x", 100)
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = line
	}
	text := strings.Join(lines, "\n")

	chunks := SplitMessage(text, 1000)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 1000)
		assert.NotEmpty(t, chunk)
		// No chunk splits a line in half.
		for _, got := range strings.Split(chunk, "\n") {
			assert.Equal(t, line, got)
		}
	}
	assert.Equal(t, text, strings.Join(chunks, "\n"))
}

func TestSplitMessagePacksWordsOfLongLine(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = "word"
	}
	text := strings.Join(words, " ")

	chunks := SplitMessage(text, 100)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 100)
		assert.NotEmpty(t, chunk)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(chunks, " ")))
}

func TestSplitMessageWhitespaceOnlyLineYieldsNoEmptyChunk(t *testing.T) {
	text := " \n" + strings.Repeat("x", 99) + "\n" + strings.Repeat("y", 99)

	chunks := SplitMessage(text, 100)

	require.Len(t, chunks, 2)
	for _, chunk := range chunks {
		assert.NotEmpty(t, chunk)
		assert.LessOrEqual(t, len(chunk), 100)
	}
}

func TestSplitMessageWhitespacePaddedLines(t *testing.T) {
	line := "   " + strings.Repeat("z", 90) + "   "
	text := strings.Repeat(line+"\n", 3)

	for _, chunk := range SplitMessage(text, 100) {
		assert.NotEmpty(t, chunk)
		assert.Equal(t, chunk, strings.TrimSpace(chunk))
	}
}

func TestSplitMessageWithPartsSingleChunkUnmodified(t *testing.T) {
	chunks := SplitMessageWithParts("short message", MaxMessageLength)

	require.Equal(t, []string{"short message"}, chunks)
}

func TestSplitMessageWithPartsMarksEveryChunk(t *testing.T) {
	text := strings.Repeat("a", 300)

	chunks := SplitMessageWithParts(text, 100)

	require.Len(t, chunks, 3)
	assert.True(t, strings.HasPrefix(chunks[0], "📝 Part 1/3\n\n"))
	assert.True(t, strings.HasPrefix(chunks[1], "📝 Part 2/3\n\n"))
	assert.True(t, strings.HasPrefix(chunks[2], "📝 Part 3/3\n\n"))
}
