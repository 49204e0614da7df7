package names

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 29, 15, 30, 42, 0, time.Local)
}

func TestServiceNameShape(t *testing.T) {
	gen := DefaultServiceNames()
	rng := testSource()
	pattern := regexp.MustCompile(`^[A-Za-z]+$`)
	for i := 0; i < 1000; i++ {
		name, err := gen.Generate(rng)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if name == "" {
			t.Fatal("generated empty service name")
		}
		if !pattern.MatchString(name) {
			t.Fatalf("service name %q contains unexpected characters", name)
		}
	}
}

func TestServiceNameEmptyVocabulary(t *testing.T) {
	gen := DefaultServiceNames()
	gen.Components = nil
	if _, err := gen.Generate(testSource()); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestLogNameExtension(t *testing.T) {
	gen := DefaultFileNames()
	gen.Clock = fixedClock
	rng := testSource()
	for i := 0; i < 1000; i++ {
		name, err := gen.GenerateLog(rng)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if !strings.HasSuffix(name, ".log") {
			t.Fatalf("log name %q missing .log extension", name)
		}
		if strings.Count(name, ".log") != 1 {
			t.Fatalf("log name %q carries the extension more than once", name)
		}
	}
}

func TestLogNameDateVariant(t *testing.T) {
	gen := DefaultFileNames()
	gen.Clock = fixedClock
	rng := testSource()
	sawDate, sawTime := false, false
	for i := 0; i < 2000; i++ {
		name, err := gen.GenerateLog(rng)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if strings.Contains(name, "_20260829") {
			sawDate = true
		}
		if strings.Contains(name, "_153042") {
			sawTime = true
		}
	}
	if !sawDate {
		t.Fatal("date variant never generated")
	}
	if !sawTime {
		t.Fatal("time-of-day variant never generated")
	}
}

func TestTempNameEmptyExtension(t *testing.T) {
	gen := DefaultFileNames()
	rng := testSource()
	for i := 0; i < 1000; i++ {
		name, err := gen.GenerateTemp(rng, "")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if name == "" {
			t.Fatal("generated empty temp name")
		}
		if strings.Contains(name, ".") {
			t.Fatalf("temp name %q has an extension marker despite empty extension", name)
		}
	}
}

func TestTempNameCallerExtension(t *testing.T) {
	gen := DefaultFileNames()
	rng := testSource()
	for i := 0; i < 200; i++ {
		name, err := gen.GenerateTemp(rng, ".dat")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if !strings.HasSuffix(name, ".dat") {
			t.Fatalf("temp name %q missing caller extension", name)
		}
	}
}

func TestBatchNameExtension(t *testing.T) {
	gen := DefaultFileNames()
	rng := testSource()
	pattern := regexp.MustCompile(`^(setup|install|update|cleanup|init|start)(_\d{1,2}|_tmp)?\.bat$`)
	for i := 0; i < 1000; i++ {
		name, err := gen.GenerateBatch(rng)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if !pattern.MatchString(name) {
			t.Fatalf("batch name %q does not match expected shape", name)
		}
	}
}

func TestExecutableNameExtension(t *testing.T) {
	gen := DefaultFileNames()
	rng := testSource()
	for i := 0; i < 1000; i++ {
		name, err := gen.GenerateExecutable(rng)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if !strings.HasSuffix(name, ".exe") {
			t.Fatalf("executable name %q missing .exe extension", name)
		}
		if strings.Count(name, ".") != 1 {
			t.Fatalf("executable name %q has stray dots", name)
		}
	}
}

func TestTaskNameShape(t *testing.T) {
	gen := DefaultTaskNames()
	rng := testSource()
	pattern := regexp.MustCompile(`^[A-Za-z]+$`)
	for i := 0; i < 1000; i++ {
		name, err := gen.Generate(rng)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if !pattern.MatchString(name) {
			t.Fatalf("task name %q contains unexpected characters", name)
		}
	}
}

func TestShareNameShape(t *testing.T) {
	gen := DefaultShareNames()
	rng := testSource()
	pattern := regexp.MustCompile(`^(SHARE|DATA|FILES|DOCS|PUBLIC|TRANSFER|COMMON)[1-9]?$`)
	plain, numbered := false, false
	for i := 0; i < 2000; i++ {
		name, err := gen.GenerateShare(rng)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if !pattern.MatchString(name) {
			t.Fatalf("share name %q does not match expected shape", name)
		}
		if name == strings.TrimRight(name, "123456789") {
			plain = true
		} else {
			numbered = true
		}
	}
	if !plain || !numbered {
		t.Fatal("expected both plain and digit-suffixed share names across draws")
	}
}

func TestDirectoryNameShape(t *testing.T) {
	gen := DefaultShareNames()
	rng := testSource()
	pattern := regexp.MustCompile(`^__(tmp|temp|cache|data|backup|old)([1-9]\d{2})$`)
	for i := 0; i < 1000; i++ {
		name, err := gen.GenerateDirectory(rng)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		m := pattern.FindStringSubmatch(name)
		if m == nil {
			t.Fatalf("directory name %q does not match __<prefix><nnn>", name)
		}
	}
}
