package cli

import (
	"github.com/spf13/cobra"
)

func (c *Cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// Версия печатается без конфигурации и локальных хранилищ
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(*cobra.Command, []string) {
			c.io.Printf("Shop Client\n")
			c.io.Printf("  Version:    %s\n", c.build.Version)
			c.io.Printf("  Build date: %s\n", c.build.BuildDate)
			c.io.Printf("  Git commit: %s\n", c.build.GitCommit)
		},
	}
}
