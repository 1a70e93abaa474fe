package cmd

import (
	"github.com/josephlewis42/opgen/core/opcodes"
	"github.com/spf13/cobra"
)

var tableSort string

// tableCmd prints the fully parsed table including the metadata fields
// the arms generator ignores.
var tableCmd = &cobra.Command{
	Use:   "table [FILE]",
	Short: "Print the parsed opcode table.",
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

		var defs []opcodes.Def
		if err := newScanner(cmd, cfg, input).Scan(fd, func(d opcodes.Def) {
			defs = append(defs, d)
		}); err != nil {
			return err
		}

		var records []opcodes.Record
		for _, d := range defs {
			record, err := opcodes.ParseRecord(d)
			if err != nil {
				if skipMalformed {
					warnf(cmd, "%s: skipping: %v", input, err)
					continue
				}
				return err
			}
			records = append(records, record)
		}

		if err := opcodes.SortRecords(records, tableSort); err != nil {
			return err
		}

		return opcodes.RenderTable(cmd.OutOrStdout(), records)
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringVar(&tableSort, "sort", opcodes.SortByCode, "Sort order: code or name.")
}
