package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/fatih/color"
	"github.com/josephlewis42/opgen/core/config"
	"github.com/josephlewis42/opgen/core/opcodes"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath        string
	skipMalformed  bool
	prefixOverride string
)

// appFs backs config and input reads; tests swap in a memory fs.
var appFs afero.Fs = afero.NewOsFs()

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(appFs, cfgPath)

	// A bare checkout has no config file; the built-in defaults match
	// the emulator's layout so the tool still works.
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return configuration, err
}

// openInput opens the listing named by args, falling back to the
// configured default.
func openInput(cfg *config.Configuration, args []string) (afero.File, string, error) {
	input := cfg.Input
	if len(args) > 0 {
		input = args[0]
	}

	fd, err := appFs.Open(input)
	return fd, input, err
}

// newScanner builds a scanner honoring the shared scan flags.
func newScanner(cmd *cobra.Command, cfg *config.Configuration, input string) *opcodes.Scanner {
	scanner := &opcodes.Scanner{Prefix: cfg.Prefix}
	if prefixOverride != "" {
		scanner.Prefix = prefixOverride
	}
	if skipMalformed {
		scanner.OnMalformed = func(line int, text string) {
			warnf(cmd, "%s:%d: skipping malformed row: %s", input, line, text)
		}
	}
	return scanner
}

// warnf prints a yellow scan warning to the command's stderr.
func warnf(cmd *cobra.Command, format string, args ...interface{}) {
	warn := color.New(color.FgYellow)
	log.New(cmd.ErrOrStderr(), "", 0).Print(warn.Sprintf(format, args...))
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "opgen",
	Short: "Opcode table code generator",
	Long:  `Generates Rust match arms and reports from an emulator's opcode table.`,
	// Run: func(cmd *cobra.Command, args []string) { },
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")

	for _, cmd := range []*cobra.Command{armsCmd, tableCmd, statsCmd} {
		cmd.Flags().BoolVar(&skipMalformed, "skip-malformed", false, "Skip rows that can't be parsed instead of aborting.")
		cmd.Flags().StringVar(&prefixOverride, "prefix", "", "Override the configured match prefix.")
	}
}
