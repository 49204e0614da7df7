// Package cli implements the artifactgen CLI commands.
package cli

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"artifactgen/internal/pick"
	"artifactgen/pkg/profile"
)

var (
	seedFlag    uint64
	countFlag   int
	profileFlag string
)

// denyRetryBudget bounds regeneration when a profile denies a candidate.
// After the budget is spent the last candidate is kept: deny filtering
// curates variety, it never makes generation fail.
const denyRetryBudget = 16

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "artifactgen",
	Short: "Generate plausible Windows artifact names and task values",
	Long: "artifactgen synthesizes service, file, task and share names plus task-scheduler\n" +
		"configuration values that blend into legitimate Windows system activity. It only\n" +
		"prints strings and values; deployment is someone else's job.",
}

func init() {
	RootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "Seed the random source for reproducible output")
	RootCmd.PersistentFlags().IntVarP(&countFlag, "count", "n", 0, "Number of results to generate (default 1)")
	RootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "Path to a YAML generation profile")
}

func loadProfile() *profile.Profile {
	if profileFlag == "" {
		return nil
	}
	prof, err := profile.LoadFile(profileFlag)
	if err != nil {
		exitErr("load profile", err)
	}
	return prof
}

func newSource(cmd *cobra.Command, prof *profile.Profile) pick.Source {
	if cmd.Flags().Changed("seed") {
		return rand.New(rand.NewPCG(seedFlag, seedFlag))
	}
	if prof != nil && prof.Seed != nil {
		return rand.New(rand.NewPCG(*prof.Seed, *prof.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func resultCount(prof *profile.Profile) int {
	if countFlag > 0 {
		return countFlag
	}
	if prof != nil && prof.Count > 0 {
		return prof.Count
	}
	return 1
}

// emitNames runs one generator resultCount times, regenerating denied
// candidates within the retry budget, and prints one name per line.
func emitNames(prof *profile.Profile, generate func() (string, error)) {
	for i := 0; i < resultCount(prof); i++ {
		name, err := generate()
		if err != nil {
			exitErr("generate", err)
		}
		for attempt := 0; prof.Denied(name) && attempt < denyRetryBudget; attempt++ {
			name, err = generate()
			if err != nil {
				exitErr("generate", err)
			}
		}
		fmt.Println(name)
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
