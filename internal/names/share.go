package names

import (
	"strconv"

	"artifactgen/internal/pick"
)

// hiddenDirMarker fronts generated directory names so they read as the
// throwaway temp directories installers leave behind.
const hiddenDirMarker = "__"

// ShareNames composes plausible SMB share and directory names.
type ShareNames struct {
	Shares      []string
	DirPrefixes []string
}

func DefaultShareNames() ShareNames {
	return ShareNames{
		Shares:      defaultShareNames,
		DirPrefixes: defaultDirPrefixes,
	}
}

// GenerateShare returns a share name, half the time with a single digit
// 1-9 appended.
func (g ShareNames) GenerateShare(rng pick.Source) (string, error) {
	if err := requireVocab("share name", g.Shares); err != nil {
		return "", err
	}
	base := g.Shares[rng.IntN(len(g.Shares))]
	if rng.IntN(2) == 0 {
		base += strconv.Itoa(1 + rng.IntN(9))
	}
	return base, nil
}

// GenerateDirectory returns "__<prefix><nnn>" with nnn in [100,999].
func (g ShareNames) GenerateDirectory(rng pick.Source) (string, error) {
	if err := requireVocab("directory prefix", g.DirPrefixes); err != nil {
		return "", err
	}
	prefix := g.DirPrefixes[rng.IntN(len(g.DirPrefixes))]
	return hiddenDirMarker + prefix + strconv.Itoa(100+rng.IntN(900)), nil
}
