package cmd

import (
	"fmt"

	"github.com/josephlewis42/opgen/core/opcodes"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var statsCmd = &cobra.Command{
	Use:   "stats [FILE]",
	Short: "Show per-mnemonic counts for an opcode table.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fd, input, err := openInput(cfg, args)
		if err != nil {
			return err
		}
		defer fd.Close()

		var summary opcodes.Summary
		if err := newScanner(cmd, cfg, input).Scan(fd, summary.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(summary)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
