package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Input limits. User IDs are opaque backend identifiers; the dashboard only
// bounds and shape-checks them before building request paths.
const (
	MaxUserIDLen = 64
	MaxSearchLen = 128
	MaxFilterLen = 100
)

// userIDRe matches opaque user identifiers: alphanumeric plus dash,
// underscore, dot and colon.
var userIDRe = regexp.MustCompile(`^[A-Za-z0-9_.:\-]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateUserID checks that a user ID is well-formed. Returns the cleaned
// ID, or an empty ID with an error message.
func ValidateUserID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "userId is required"
	}
	if len(id) > MaxUserIDLen {
		return "", "userId must be at most 64 characters"
	}
	if !userIDRe.MatchString(id) {
		return "", "userId contains invalid characters"
	}
	return id, ""
}

// ValidateViewMode normalizes the gallery view mode. Unknown values fall
// back to "recommended".
func ValidateViewMode(mode string) string {
	if strings.TrimSpace(mode) == "all" {
		return "all"
	}
	return "recommended"
}

// ValidateSearchTerm bounds a free-text search term. Over-long input is
// truncated rather than rejected; the filter runs client-side anyway.
func ValidateSearchTerm(term string) string {
	term = strings.TrimSpace(term)
	if len(term) > MaxSearchLen {
		term = term[:MaxSearchLen]
	}
	return term
}

// ValidateFilter bounds a category or domain filter value.
func ValidateFilter(value string) string {
	value = strings.TrimSpace(value)
	if len(value) > MaxFilterLen {
		value = value[:MaxFilterLen]
	}
	return value
}
