// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/myvision/guide-engine/pkg/types"
)

// maxCleanTitleLen caps the topic portion of generated filenames.
const maxCleanTitleLen = 50

// CleanTitle converts a topic into a filesystem-safe filename fragment:
// lowercased, punctuation stripped, whitespace and hyphen runs collapsed to
// single underscores, leading and trailing underscores trimmed, truncated to
// 50 characters. Idempotent: cleaning an already-clean title returns it
// unchanged.
func CleanTitle(topic string) string {
	lower := strings.ToLower(topic)

	var sb strings.Builder
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ' ' || r == '-' || r == '\t' || r == '\n' {
			sb.WriteRune(r)
		}
	}

	fields := strings.FieldsFunc(sb.String(), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '-'
	})
	clean := strings.Trim(strings.Join(fields, "_"), "_")

	if runes := []rune(clean); len(runes) > maxCleanTitleLen {
		clean = strings.TrimRight(string(runes[:maxCleanTitleLen]), "_")
	}
	return clean
}

// Filename builds the full guide filename:
// <cleanTitle>_<guideType>_guide_<YYYYMMDD_HHMMSS>.<ext>.
func Filename(topic, guideType string, format types.Format, now time.Time) string {
	return fmt.Sprintf("%s_%s_guide_%s.%s",
		CleanTitle(topic), guideType, now.Format("20060102_150405"), format.Extension())
}
