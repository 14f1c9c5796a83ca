package posts

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
)

func neverExists(context.Context, string) (bool, error) {
	return false, nil
}

func existsIn(taken ...string) ExistsFunc {
	set := map[string]bool{}
	for _, s := range taken {
		set[s] = true
	}
	return func(_ context.Context, slug string) (bool, error) {
		return set[slug], nil
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"Go 1.23 Released", "go-123-released"},
		{"  spaced   out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER case", "upper-case"},
		{"!!!", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.title); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestResolveSlugDeterministic(t *testing.T) {
	ctx := context.Background()
	first, err := ResolveSlug(ctx, "Hello, World!", neverExists)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ResolveSlug(ctx, "Hello, World!", neverExists)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("got %q then %q, want identical results", first, second)
	}
	if first != "hello-world" {
		t.Errorf("got %q, want %q", first, "hello-world")
	}
}

func TestResolveSlugCollision(t *testing.T) {
	got, err := ResolveSlug(context.Background(), "Hello, World!", existsIn("hello-world"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello-world-1" {
		t.Errorf("got %q, want %q", got, "hello-world-1")
	}
}

func TestResolveSlugPicksLowestFreeSuffix(t *testing.T) {
	exists := existsIn("hello-world", "hello-world-1", "hello-world-3")
	got, err := ResolveSlug(context.Background(), "Hello, World!", exists)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello-world-2" {
		t.Errorf("got %q, want %q", got, "hello-world-2")
	}
}

func TestResolveSlugEmptyTitleFallback(t *testing.T) {
	got, err := ResolveSlug(context.Background(), "!!!", neverExists)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "post") {
		t.Errorf("got %q, want a slug based on %q", got, "post")
	}
}

func TestResolveSlugTruncatesBase(t *testing.T) {
	got, err := ResolveSlug(context.Background(), strings.Repeat("a", 200), neverExists)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 120 {
		t.Errorf("got length %d, want 120", len(got))
	}
}

func TestResolveSlugSuffixSurvivesTruncation(t *testing.T) {
	long := strings.Repeat("a", 200)
	base := strings.Repeat("a", 120)
	got, err := ResolveSlug(context.Background(), long, existsIn(base))
	if err != nil {
		t.Fatal(err)
	}
	if got != base+"-1" {
		t.Errorf("got %q, want %q", got, base+"-1")
	}
}

func TestResolveSlugExhaustionFallback(t *testing.T) {
	calls := 0
	alwaysTaken := func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	}
	got, err := ResolveSlug(context.Background(), "hello", alwaysTaken)
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^hello-\d{6}$`).MatchString(got) {
		t.Errorf("got %q, want hello- followed by six time digits", got)
	}
	// base plus suffixes 1..1000 are probed before the fallback kicks in
	if calls != 1001 {
		t.Errorf("got %d existence checks, want 1001", calls)
	}
}

func TestResolveSlugPropagatesExistsError(t *testing.T) {
	boom := errors.New("db down")
	failing := func(context.Context, string) (bool, error) {
		return false, boom
	}
	if _, err := ResolveSlug(context.Background(), "hello", failing); !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}
}
