package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Generate a plausible file name",
		Run:   runFile,
	}
	cmd.Flags().StringP("kind", "k", "temp", "File kind: log, temp, batch or exe")
	cmd.Flags().StringP("ext", "e", ".tmp", "Extension for temp files; pass an empty string for none")
	RootCmd.AddCommand(cmd)
}

func runFile(cmd *cobra.Command, args []string) {
	kind, _ := cmd.Flags().GetString("kind")
	ext, _ := cmd.Flags().GetString("ext")

	prof := loadProfile()
	rng := newSource(cmd, prof)
	gen := prof.FileNames()

	switch kind {
	case "log":
		emitNames(prof, func() (string, error) { return gen.GenerateLog(rng) })
	case "temp":
		emitNames(prof, func() (string, error) { return gen.GenerateTemp(rng, ext) })
	case "batch":
		emitNames(prof, func() (string, error) { return gen.GenerateBatch(rng) })
	case "exe":
		emitNames(prof, func() (string, error) { return gen.GenerateExecutable(rng) })
	default:
		exitErr("file", fmt.Errorf("unknown kind %q (want log, temp, batch or exe)", kind))
	}
}
