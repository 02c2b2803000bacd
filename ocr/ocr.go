package ocr

import (
	"context"
	"fmt"
	"os"
)

// Recognizer is the external optical-character-recognition boundary.
// Implementations may return empty or garbled text; the extractor
// treats any text as input and signals unreadable tickets through a
// failed extraction, not an error here. The context lets a torn-down
// caller abandon an in-flight recognition instead of acting on a stale
// result.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// Static is a Recognizer that ignores the image and returns fixed
// pre-recognized text. Used by tests and by CLI runs where the
// recognition step already happened elsewhere.
type Static string

func (s Static) Recognize(ctx context.Context, _ []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(s), nil
}

// File is a Recognizer whose recognition step already ran elsewhere and
// left its text output at the named path. The image bytes are ignored.
type File string

func (f File) Recognize(ctx context.Context, _ []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(string(f))
	if err != nil {
		return "", fmt.Errorf("read recognized text: %w", err)
	}
	return string(data), nil
}
