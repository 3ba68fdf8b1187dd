package utils

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const bookingIDPrefix = "DWK"

// GenerateBookingID returns the public booking reference, e.g. DWK3F9A21BC.
// The token is random so booking references cannot be enumerated from the
// sequence of created rows.
func GenerateBookingID() string {
	u := uuid.New()
	return bookingIDPrefix + strings.ToUpper(hex.EncodeToString(u[:])[:8])
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL-safe slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
