package names

import (
	"time"

	"artifactgen/internal/pick"
)

var logTemplates = []string{
	"{prefix}_{date}",      // log_20260829
	"{prefix}{number:04d}", // trace0123
	"{prefix}_{timestamp}", // error_153042
	"{prefix}",
}

var tempTemplates = []string{
	"{prefix}{hex}",      // tmp4A3F2E
	"{prefix}_{number}",  // temp_12345
	"~{prefix}{number}",  // ~tmp1234
	"{prefix}",
}

var batchTemplates = []string{
	"{prefix}",
	"{prefix}_{number}",
	"{prefix}_tmp",
}

var exeTemplates = []string{
	"{prefix}{suffix}", // svchost, setupmngr
	"{prefix}",
}

const hexDigits = "0123456789ABCDEF"

// FileNames composes plausible file names across the artifact kinds a
// deployment step drops: logs, temp files, batch scripts, executables.
// Clock defaults to time.Now; date and time-of-day tokens use the local
// wall clock with no timezone normalization.
type FileNames struct {
	LogPrefixes   []string
	TempPrefixes  []string
	BatchPrefixes []string
	ExePrefixes   []string
	ExeSuffixes   []string
	Clock         func() time.Time
}

func DefaultFileNames() FileNames {
	return FileNames{
		LogPrefixes:   defaultLogPrefixes,
		TempPrefixes:  defaultTempPrefixes,
		BatchPrefixes: defaultBatchPrefixes,
		ExePrefixes:   defaultExePrefixes,
		ExeSuffixes:   defaultExeSuffixes,
	}
}

func (g FileNames) now() time.Time {
	if g.Clock != nil {
		return g.Clock()
	}
	return time.Now()
}

// GenerateLog returns a log-style name, always with a .log extension.
func (g FileNames) GenerateLog(rng pick.Source) (string, error) {
	if err := requireVocab("log prefix", g.LogPrefixes); err != nil {
		return "", err
	}
	now := g.now()
	name, err := Compose(rng, logTemplates, map[string]Supplier{
		"prefix":    word(rng, g.LogPrefixes),
		"date":      func() any { return now.Format("20060102") },
		"timestamp": func() any { return now.Format("150405") },
		"number":    func() any { return rng.IntN(10000) },
	})
	if err != nil {
		return "", err
	}
	return name + ".log", nil
}

// GenerateTemp returns a temp-style name with the caller's extension
// appended verbatim. An empty extension appends nothing, not a bare dot.
func (g FileNames) GenerateTemp(rng pick.Source, extension string) (string, error) {
	if err := requireVocab("temp prefix", g.TempPrefixes); err != nil {
		return "", err
	}
	name, err := Compose(rng, tempTemplates, map[string]Supplier{
		"prefix": word(rng, g.TempPrefixes),
		"hex":    func() any { return randomHex(rng, 6) },
		"number": func() any { return 1000 + rng.IntN(99000) },
	})
	if err != nil {
		return "", err
	}
	return name + extension, nil
}

// GenerateBatch returns a batch-script name, always with a .bat extension.
func (g FileNames) GenerateBatch(rng pick.Source) (string, error) {
	if err := requireVocab("batch prefix", g.BatchPrefixes); err != nil {
		return "", err
	}
	name, err := Compose(rng, batchTemplates, map[string]Supplier{
		"prefix": word(rng, g.BatchPrefixes),
		"number": func() any { return 1 + rng.IntN(99) },
	})
	if err != nil {
		return "", err
	}
	return name + ".bat", nil
}

// GenerateExecutable returns an exe-style name, always with a .exe extension.
func (g FileNames) GenerateExecutable(rng pick.Source) (string, error) {
	if err := requireVocab("exe prefix", g.ExePrefixes); err != nil {
		return "", err
	}
	if err := requireVocab("exe suffix", g.ExeSuffixes); err != nil {
		return "", err
	}
	name, err := Compose(rng, exeTemplates, map[string]Supplier{
		"prefix": word(rng, g.ExePrefixes),
		"suffix": word(rng, g.ExeSuffixes),
	})
	if err != nil {
		return "", err
	}
	return name + ".exe", nil
}

func randomHex(rng pick.Source, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = hexDigits[rng.IntN(len(hexDigits))]
	}
	return string(buf)
}
