package telegram

import (
	"fmt"
	"strings"
)

// MaxMessageLength is Telegram's hard limit per message.
const MaxMessageLength = 4096

// SplitMessage splits text into ordered chunks of at most maxLength bytes,
// preferring line breaks, then spaces, and force-splitting only words that
// exceed maxLength on their own. Chunks are trimmed of surrounding
// whitespace; concatenating them reproduces the original content in order.
func SplitMessage(text string, maxLength int) []string {
	if len(text) <= maxLength {
		return []string{text}
	}

	var chunks []string
	var current string

	flush := func() {
		if trimmed := strings.TrimSpace(current); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
		current = ""
	}

	for _, line := range strings.Split(text, "\n") {
		if len(line) > maxLength {
			// Line does not fit on its own: fall back to word packing.
			flush()

			for _, word := range strings.Split(line, " ") {
				if len(current)+1+len(word) > maxLength {
					flush()
					for len(word) > maxLength {
						chunks = append(chunks, word[:maxLength])
						word = word[maxLength:]
					}
					current = word
				} else if current == "" {
					current = word
				} else {
					current += " " + word
				}
			}
			continue
		}

		if len(current)+1+len(line) > maxLength {
			if current == "" {
				chunks = append(chunks, line)
			} else {
				flush()
				current = line
			}
		} else if current == "" {
			current = line
		} else {
			current += "\n" + line
		}
	}

	flush()

	return chunks
}

// SplitMessageWithParts splits like SplitMessage but prefixes each chunk
// with a part marker. Single-chunk output is returned unmodified.
func SplitMessageWithParts(text string, maxLength int) []string {
	chunks := SplitMessage(text, maxLength)
	if len(chunks) == 1 {
		return chunks
	}

	parts := make([]string, len(chunks))
	for i, chunk := range chunks {
		parts[i] = fmt.Sprintf("📝 Part %d/%d\n\n%s", i+1, len(chunks), chunk)
	}

	return parts
}
