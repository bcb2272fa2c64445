package telegram

import (
	"context"
	"fmt"
	"time"
)

// SendFunc delivers a single message to a chat.
type SendFunc func(chatID int64, text string) error

// SendChunks splits text and sends each chunk in order, pausing delay
// between chunks to stay under rate limits (no pause after the last).
// The first failed send aborts the remaining chunks and is returned to the
// caller; already-sent chunks are not retracted.
func SendChunks(ctx context.Context, send SendFunc, chatID int64, text string, maxLength int, delay time.Duration) error {
	chunks := SplitMessage(text, maxLength)

	for i, chunk := range chunks {
		if err := send(chatID, chunk); err != nil {
			return fmt.Errorf("send chunk %d/%d: %w", i+1, len(chunks), err)
		}

		if i < len(chunks)-1 && delay > 0 {
			// A cancelled context must win over an elapsed timer.
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return nil
}
