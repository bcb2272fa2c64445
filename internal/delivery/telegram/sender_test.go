package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendChunksSendsInOrder(t *testing.T) {
	var sent []string
	send := func(chatID int64, text string) error {
		sent = append(sent, text)
		return nil
	}

	text := strings.Repeat("a", 250)
	err := SendChunks(context.Background(), send, 42, text, 100, 0)

	require.NoError(t, err)
	require.Len(t, sent, 3)
	assert.Equal(t, text, strings.Join(sent, ""))
}

func TestSendChunksAbortsOnFailure(t *testing.T) {
	sendErr := errors.New("network down")
	attempts := 0
	send := func(chatID int64, text string) error {
		attempts++
		if attempts == 2 {
			return sendErr
		}
		return nil
	}

	err := SendChunks(context.Background(), send, 42, strings.Repeat("a", 250), 100, 0)

	require.ErrorIs(t, err, sendErr)
	assert.Equal(t, 2, attempts, "no chunks should be sent after a failure")
	assert.Contains(t, err.Error(), "chunk 2/3")
}

func TestSendChunksStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	send := func(chatID int64, text string) error {
		attempts++
		return nil
	}

	err := SendChunks(ctx, send, 42, strings.Repeat("a", 250), 100, 1)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestSendChunksSingleChunkNoDelay(t *testing.T) {
	var sent []string
	send := func(chatID int64, text string) error {
		sent = append(sent, text)
		return nil
	}

	// Delay is irrelevant for a single chunk; this must return immediately
	// even with a cancelled context because there is nothing to wait for.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := SendChunks(ctx, send, 42, "short", 100, 1)

	require.NoError(t, err)
	require.Equal(t, []string{"short"}, sent)
}
