package blob

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// NewKey builds an object key for a fresh upload: a millisecond timestamp
// followed by a slug of the photo title, e.g. "1700000000000-evening-light".
func NewKey(title string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), Slugify(title))
}

// Slugify lowercases s and collapses whitespace runs into single dashes.
func Slugify(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return strings.Join(fields, "-")
}

// TitleFromKey recovers a display title from an object key by dropping the
// timestamp prefix and replacing dashes with spaces. A key with no slug part
// yields the key itself so seeded records never end up untitled.
func TitleFromKey(key string) string {
	_, slug, found := strings.Cut(key, "-")
	if !found || slug == "" {
		return key
	}
	return strings.ReplaceAll(slug, "-", " ")
}
