package cmd

import (
	"github.com/josephlewis42/opgen/core/opcodes"
	"github.com/spf13/cobra"
)

// armsCmd generates the grouped match arms, one block per mnemonic.
var armsCmd = &cobra.Command{
	Use:   "arms [FILE]",
	Short: "Generate grouped match arms from an opcode table.",
	Long: `Scans an opcode table for definition rows and prints one Rust match
arm per mnemonic, disjoining every code seen for it.`,
	Args: cobra.MaximumNArgs(1),
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

		groups := opcodes.NewGroupSet()
		if err := newScanner(cmd, cfg, input).Scan(fd, func(d opcodes.Def) {
			groups.Add(d.Mnemonic, d.Code)
		}); err != nil {
			return err
		}

		return opcodes.RenderArms(cmd.OutOrStdout(), groups.Groups(), cfg.ArmBody)
	},
}

func init() {
	rootCmd.AddCommand(armsCmd)
}
