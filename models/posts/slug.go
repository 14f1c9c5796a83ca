package posts

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// fallbackBase replaces titles that normalize to nothing.
	fallbackBase = "post"

	// maxBaseLength bounds the slug base before the suffix so suffixes are
	// never cut off.
	maxBaseLength = 120

	// maxSuffixAttempts caps the sequential probe before the time-based
	// fallback takes over.
	maxSuffixAttempts = 1000
)

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9\s-]`)
	separatorRuns = regexp.MustCompile(`[\s-]+`)
)

// ExistsFunc reports whether a slug candidate is already taken.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Slugify normalizes a title into a URL-safe slug base: lowercase, ASCII
// letters and digits only, whitespace runs collapsed to single hyphens.
// Example: "Hello, World!" -> "hello-world". May return "".
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ResolveSlug derives a unique slug from a title. The base is probed as-is,
// then with numeric suffixes ("base", "base-1", "base-2", ...), so the first
// free slot wins and the result is reproducible for a given set of existing
// slugs. Past 1000 attempts the low-order digits of the current time are used
// instead of looping further; the unique index catches the residual collision
// risk of that fallback.
//
// Only the write path for posts without a client-supplied slug calls this;
// explicit slugs are never regenerated.
func ResolveSlug(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = fallbackBase
	}
	if len(base) > maxBaseLength {
		base = strings.TrimRight(base[:maxBaseLength], "-")
	}

	candidate := base
	for suffix := 1; ; suffix++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		if suffix > maxSuffixAttempts {
			ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
			return base + "-" + ms[len(ms)-6:], nil
		}
		candidate = base + "-" + strconv.Itoa(suffix)
	}
}
