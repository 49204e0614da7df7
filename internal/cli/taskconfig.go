package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"artifactgen/internal/taskcfg"
)

func init() {
	cmd := &cobra.Command{
		Use:   "taskconfig",
		Short: "Generate scheduled-task configuration values",
		Run:   runTaskConfig,
	}
	cmd.Flags().Bool("full", false, "Include the hidden flag and idle settings")
	RootCmd.AddCommand(cmd)
}

func runTaskConfig(cmd *cobra.Command, args []string) {
	full, _ := cmd.Flags().GetBool("full")

	prof := loadProfile()
	rng := newSource(cmd, prof)
	gen := taskcfg.Generator{}

	for i := 0; i < resultCount(prof); i++ {
		var record any
		var err error
		if full {
			record, err = gen.GenerateFull(rng)
		} else {
			record, err = gen.GenerateAll(rng)
		}
		if err != nil {
			exitErr("generate task config", err)
		}
		b, _ := json.MarshalIndent(record, "", "  ")
		fmt.Println(string(b))
	}
}
