// Package formatting decodes model responses that are expected to carry JSON,
// tolerating the markdown fencing and surrounding prose that chat models add.
package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when content cannot be decoded as JSON by any
// of the supported extraction strategies.
var ErrParseFailed = errors.New("failed to parse response")

var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Parse unmarshals content into T. It tries, in order: the trimmed content,
// the body of the first markdown code fence, and the outermost {...} span.
// On failure the error wraps ErrParseFailed and the decoder error of the
// last candidate tried.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	var lastErr error
	for _, candidate := range candidates(content) {
		lastErr = json.Unmarshal([]byte(candidate), &result)
		if lastErr == nil {
			return result, nil
		}
		result = *new(T)
	}

	return result, fmt.Errorf("%w: %w", ErrParseFailed, lastErr)
}

func candidates(content string) []string {
	out := []string{content}

	if matches := jsonBlockRegex.FindStringSubmatch(content); len(matches) >= 2 {
		out = append(out, strings.TrimSpace(matches[1]))
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		out = append(out, content[start:end+1])
	}

	return out
}
