package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Category is a yearly award category. (Name, Year) is unique; Slug is
// globally unique. Phase only ever advances.
type Category struct {
	ID        int64
	Slug      string
	Name      string
	Year      int
	Phase     Phase
	Sort      int
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a category name and year, e.g.
// ("Best Soundtrack", 2025) -> "best-soundtrack-2025". Collisions are
// disambiguated by the caller with a numeric suffix.
func Slugify(name string, year int) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "category"
	}
	return s + "-" + strconv.Itoa(year)
}
