// Package placement maps administrative share names to plausible drop
// locations beneath the share root. Each cataloged share carries a weighted
// list of primary sub-paths plus one last-resort fallback the deployment
// step uses after every primary has been rejected.
package placement

import (
	"strings"

	"artifactgen/internal/pick"
)

// shareMarker is the trailing character on administrative share names.
const shareMarker = "$"

// DefaultFallback is returned for shares with no catalog entry. It suits
// drive-root shares, which is what uncataloged identifiers usually are.
const DefaultFallback = `Windows\Temp\`

type sharePlacements struct {
	// primaries are ordered by stealth ranking: the first entry is the
	// deterministic best guess, weights bias the varied draw toward
	// high-traffic directories where one more file goes unnoticed.
	primaries []pick.Candidate[string]
	fallback  string
}

// Resolver resolves shares against an immutable placement catalog. The
// zero value is not usable; construct with NewResolver.
type Resolver struct {
	shares map[string]sharePlacements
}

// NewResolver returns a resolver over the built-in catalog: the Windows-root
// share (ADMIN$) and the system drive share (C$). Relative paths use
// backslash separators, always end with one and never start with one.
func NewResolver() *Resolver {
	return &Resolver{
		shares: map[string]sharePlacements{
			"ADMIN$": {
				primaries: []pick.Candidate[string]{
					pick.C(`Logs\`, 40),
					pick.C(`Temp\`, 30),
					pick.C(`Tracing\`, 20),
					pick.C(`Registration\CRMLog\`, 10),
				},
				fallback: `debug\`,
			},
			"C$": {
				primaries: []pick.Candidate[string]{
					pick.C(`Users\Public\Downloads\`, 30),
					pick.C(`ProgramData\`, 25),
					pick.C(`Windows\Tasks\`, 20),
					pick.C(`Users\Public\Documents\`, 15),
					pick.C(`PerfLogs\`, 10),
				},
				fallback: `Windows\Temp\`,
			},
		},
	}
}

// Normalize uppercases a share identifier and appends the trailing marker
// when missing, so "c", "c$" and "C$" all address the same catalog entry.
func Normalize(share string) string {
	share = strings.ToUpper(strings.TrimSpace(share))
	if !strings.HasSuffix(share, shareMarker) {
		share += shareMarker
	}
	return share
}

// ResolvePath returns one primary placement for the share. Weighted draws
// vary the answer in proportion to the catalog weights; unweighted calls
// deterministically return the first-declared entry. Unknown shares are not
// an error: they resolve to DefaultFallback.
func (r *Resolver) ResolvePath(rng pick.Source, share string, weighted bool) (string, error) {
	placements, ok := r.shares[Normalize(share)]
	if !ok {
		return DefaultFallback, nil
	}
	return pick.Select(rng, placements.primaries, weighted)
}

// ResolveFallback returns the share's last-resort path. It never consults
// weights and never varies; unknown shares get DefaultFallback.
func (r *Resolver) ResolveFallback(share string) string {
	placements, ok := r.shares[Normalize(share)]
	if !ok {
		return DefaultFallback
	}
	return placements.fallback
}

// Shares lists the cataloged identifiers in no particular order.
func (r *Resolver) Shares() []string {
	out := make([]string, 0, len(r.shares))
	for share := range r.shares {
		out = append(out, share)
	}
	return out
}

// primariesFor exposes a share's primary entries to invariant tests.
func (r *Resolver) primariesFor(share string) []pick.Candidate[string] {
	return r.shares[Normalize(share)].primaries
}
