package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"gorm.io/gorm"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9]+`)
	slugCollapse = regexp.MustCompile(`-{2,}`)
)

// Slugify turns a title into a URL slug. Cyrillic and other non-ASCII
// titles are transliterated first so Russian and Uzbek names survive.
func Slugify(s string) string {
	s = unidecode.Unidecode(s)
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "item"
	}
	return s
}

// UniqueSlug derives a slug from title that no row of table currently uses,
// appending -2, -3, ... on collision. Slugs are immutable once set; callers
// only use this on create.
func UniqueSlug(db *gorm.DB, table, title string) string {
	base := Slugify(title)
	slug := base
	for i := 2; ; i++ {
		var n int64
		db.Table(table).Where("slug = ?", slug).Count(&n)
		if n == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
