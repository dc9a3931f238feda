package organize

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUsage marks problems with the invocation itself, such as a missing
	// target folder.
	ErrUsage = errors.New("usage error")
	// ErrConfiguration marks unusable configuration, such as an unwritable
	// audit-log path.
	ErrConfiguration = errors.New("configuration error")
	// ErrTransient marks filesystem failures that may succeed on retry.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes run context while tagging it
// with the provided marker for classification. The marker should be one of
// the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "run failure"
	}
	return strings.Join(parts, ": ")
}
