package names

import (
	"fmt"

	"artifactgen/internal/pick"
)

// Default vocabulary tables. Tokens mirror naming seen on stock Windows
// installs so composed names blend into legitimate system activity. The
// defaults are never mutated; profile customization copies before extending.

var defaultVendors = []string{"Microsoft", "Windows", "Intel", "AMD", "NVIDIA", "Adobe", "Realtek"}

var defaultComponents = []string{
	"Audio", "Display", "Network", "Security", "Update", "Telemetry",
	"Diagnostic", "Performance", "Device", "Management",
}

var defaultServiceSuffixes = []string{"Service", "Helper", "Manager", "Monitor", "Agent"}

var defaultLogPrefixes = []string{"log", "trace", "debug", "error", "event", "setup", "install"}

var defaultTempPrefixes = []string{"tmp", "temp", "cache", "backup", "old", "bak"}

var defaultBatchPrefixes = []string{"setup", "install", "update", "cleanup", "init", "start"}

var defaultExePrefixes = []string{"svc", "setup", "update", "install", "helper", "agent", "manager", "host"}

var defaultExeSuffixes = []string{"host", "svc", "mngr", "agent", "helper", "exe"}

var defaultTaskActions = []string{"Update", "Sync", "Check", "Scan", "Verify", "Backup", "Clean", "Monitor"}

var defaultTaskTargets = []string{"System", "Security", "Network", "Cache", "Registry", "Config", "Logs", "Data"}

var defaultShareNames = []string{"SHARE", "DATA", "FILES", "DOCS", "PUBLIC", "TRANSFER", "COMMON"}

var defaultDirPrefixes = []string{"tmp", "temp", "cache", "data", "backup", "old"}

// word binds a vocabulary to a composer placeholder: one uniform draw per
// composition.
func word(rng pick.Source, vocab []string) Supplier {
	return func() any { return vocab[rng.IntN(len(vocab))] }
}

func requireVocab(category string, vocab []string) error {
	if len(vocab) == 0 {
		return fmt.Errorf("%w: empty %s vocabulary", ErrConfiguration, category)
	}
	return nil
}
