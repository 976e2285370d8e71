package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}

// ValidateAmount validates a request amount. Amounts must be strictly
// positive; the backend enforces the same rule authoritatively.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive: %s", amount)
	}
	return nil
}

// ValidateAttachment checks an attachment against the advisory upload
// limits. The server remains the authority; this is a pre-flight UX
// check only.
func ValidateAttachment(filename string, size, maxSize int64, allowedExtensions []string) error {
	if maxSize > 0 && size > maxSize {
		return fmt.Errorf("attachment exceeds %d bytes: %s", maxSize, filename)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return fmt.Errorf("attachment has no file extension: %s", filename)
	}
	for _, allowed := range allowedExtensions {
		if ext == strings.ToLower(allowed) {
			return nil
		}
	}
	return fmt.Errorf("attachment type %q not allowed: %s", ext, filename)
}
