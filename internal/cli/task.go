package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Generate a plausible scheduled-task name",
		Run:   runTask,
	}
	RootCmd.AddCommand(cmd)
}

func runTask(cmd *cobra.Command, args []string) {
	prof := loadProfile()
	rng := newSource(cmd, prof)
	gen := prof.TaskNames()
	emitNames(prof, func() (string, error) { return gen.Generate(rng) })
}
