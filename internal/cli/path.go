package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"artifactgen/internal/placement"
)

func init() {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Resolve a plausible drop path beneath a share",
		Run:   runPath,
	}
	cmd.Flags().StringP("share", "s", "C$", "Share identifier, e.g. C$ or ADMIN$")
	cmd.Flags().BoolP("weighted", "w", false, "Vary the answer by stealth weight instead of returning the best guess")
	cmd.Flags().Bool("fallback", false, "Print the last-resort path instead of a primary placement")
	RootCmd.AddCommand(cmd)
}

func runPath(cmd *cobra.Command, args []string) {
	share, _ := cmd.Flags().GetString("share")
	weighted, _ := cmd.Flags().GetBool("weighted")
	fallback, _ := cmd.Flags().GetBool("fallback")

	prof := loadProfile()
	rng := newSource(cmd, prof)
	resolver := placement.NewResolver()

	if fallback {
		fmt.Println(resolver.ResolveFallback(share))
		return
	}

	for i := 0; i < resultCount(prof); i++ {
		path, err := resolver.ResolvePath(rng, share, weighted)
		if err != nil {
			exitErr("resolve path", err)
		}
		for attempt := 0; prof.Denied(path) && attempt < denyRetryBudget; attempt++ {
			path, err = resolver.ResolvePath(rng, share, weighted)
			if err != nil {
				exitErr("resolve path", err)
			}
		}
		fmt.Println(path)
	}
}
