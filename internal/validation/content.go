package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const tweetMaxLength = 280

// ValidateTweetContent checks that tweet content is non-blank and within the length cap.
// Length is measured in runes so multibyte characters count once.
func ValidateTweetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(content) > tweetMaxLength {
		return fmt.Errorf("content must be at most %d characters", tweetMaxLength)
	}
	return nil
}

// ValidateName checks the display name for profile create and update.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) > 100 {
		return fmt.Errorf("name must be at most 100 characters")
	}
	return nil
}
