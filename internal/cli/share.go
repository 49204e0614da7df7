package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	shareCmd := &cobra.Command{
		Use:   "share",
		Short: "Generate a plausible SMB share name",
		Run:   runShare,
	}
	dirCmd := &cobra.Command{
		Use:   "dir",
		Short: "Generate a plausible hidden/temp directory name",
		Run:   runDir,
	}
	RootCmd.AddCommand(shareCmd, dirCmd)
}

func runShare(cmd *cobra.Command, args []string) {
	prof := loadProfile()
	rng := newSource(cmd, prof)
	gen := prof.ShareNames()
	emitNames(prof, func() (string, error) { return gen.GenerateShare(rng) })
}

func runDir(cmd *cobra.Command, args []string) {
	prof := loadProfile()
	rng := newSource(cmd, prof)
	gen := prof.ShareNames()
	emitNames(prof, func() (string, error) { return gen.GenerateDirectory(rng) })
}
