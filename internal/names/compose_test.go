package names

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func testSource() *rand.Rand {
	return rand.New(rand.NewPCG(3, 5))
}

func TestComposeEmptyTemplates(t *testing.T) {
	_, err := Compose(testSource(), nil, nil)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestComposeUnboundPlaceholder(t *testing.T) {
	_, err := Compose(testSource(), []string{"{missing}"}, map[string]Supplier{})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestComposeSamplesEachPlaceholderOnce(t *testing.T) {
	calls := 0
	got, err := Compose(testSource(), []string{"{x}-{x}-{x}"}, map[string]Supplier{
		"x": func() any {
			calls++
			return calls
		},
	})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("supplier invoked %d times, want 1", calls)
	}
	if got != "1-1-1" {
		t.Fatalf("repeated placeholder got %q, want %q", got, "1-1-1")
	}
}

func TestComposeLiteralText(t *testing.T) {
	got, err := Compose(testSource(), []string{"svc{component}"}, map[string]Supplier{
		"component": func() any { return "Update" },
	})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if got != "svcUpdate" {
		t.Fatalf("got %q, want %q", got, "svcUpdate")
	}
}

func TestComposePaddedDecimal(t *testing.T) {
	got, err := Compose(testSource(), []string{"{n:04d}"}, map[string]Supplier{
		"n": func() any { return 7 },
	})
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if got != "0007" {
		t.Fatalf("got %q, want %q", got, "0007")
	}
}

func TestComposePaddedDecimalRejectsNonInteger(t *testing.T) {
	_, err := Compose(testSource(), []string{"{n:04d}"}, map[string]Supplier{
		"n": func() any { return "seven" },
	})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for non-integer value, got %v", err)
	}
}

func TestComposeRejectsUnknownSpecifier(t *testing.T) {
	for _, spec := range []string{"{n:x}", "{n:4d}", "{n:04f}", "{n:0d}"} {
		_, err := Compose(testSource(), []string{spec}, map[string]Supplier{
			"n": func() any { return 7 },
		})
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("template %q: expected ErrConfiguration, got %v", spec, err)
		}
	}
}

func TestComposeUnterminatedPlaceholder(t *testing.T) {
	_, err := Compose(testSource(), []string{"{oops"}, map[string]Supplier{
		"oops": func() any { return "x" },
	})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestComposePicksAllTemplates(t *testing.T) {
	templates := []string{"a", "b", "c"}
	rng := testSource()
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		got, err := Compose(rng, templates, nil)
		if err != nil {
			t.Fatalf("compose failed: %v", err)
		}
		seen[got] = true
	}
	if len(seen) != len(templates) {
		t.Fatalf("composition used %d of %d templates", len(seen), len(templates))
	}
}
