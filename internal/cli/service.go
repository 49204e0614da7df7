package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Generate a plausible Windows service name",
		Run:   runService,
	}
	RootCmd.AddCommand(cmd)
}

func runService(cmd *cobra.Command, args []string) {
	prof := loadProfile()
	rng := newSource(cmd, prof)
	gen := prof.ServiceNames()
	emitNames(prof, func() (string, error) { return gen.Generate(rng) })
}
