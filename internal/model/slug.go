package model

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugStripPattern     = regexp.MustCompile(`[^\w\s-]`)
	slugSeparatorPattern = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a URL-safe identifier from a display name: lower-cased,
// non-word characters stripped, whitespace runs collapsed to single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugStripPattern.ReplaceAllString(s, "")
	s = slugSeparatorPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// UniqueSlug returns the slug for name, suffixed with a counter ("-2", "-3", ...)
// until exists reports it as free. Keeps slug lookups unambiguous when two
// entities share a display name.
func UniqueSlug(name string, exists func(slug string) bool) string {
	base := Slugify(name)
	slug := base
	for n := 2; exists(slug); n++ {
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return slug
}
