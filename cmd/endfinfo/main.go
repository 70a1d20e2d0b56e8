// Package main provides the endfinfo binary entry point.
// Endfinfo inspects ENDF decay-data files: it prints per-isomer decay
// parameters, walks decay chains and converts between isomer identifiers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isodata/go-endf/config"
	"github.com/isodata/go-endf/endf"
	"github.com/isodata/go-endf/logger"
	"github.com/isodata/go-endf/nuclide"
)

const Version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	dataDir    string
	verbose    bool
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "endfinfo",
		Short:   "Inspect ENDF decay-data files",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML config file")
	cmd.PersistentFlags().StringVarP(&opts.dataDir, "data-dir", "d", "", "directory containing decay-data files")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(infoCmd(opts))
	cmd.AddCommand(chainCmd(opts))
	cmd.AddCommand(nameCmd(opts))

	return cmd
}

// library builds the record library from the merged config and flags.
func (o *options) library() (*endf.Library, error) {
	cfg := config.DefaultConfig()
	if o.configPath != "" {
		fileCfg, err := config.LoadFromFile(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}

	if o.verbose {
		logger.SetLevel(logger.DebugLevel)
	} else {
		logger.SetLevel(parseLevel(cfg.LogLevel))
	}

	return endf.NewLibrary(endf.WithDataDir(cfg.DataDir)), nil
}

func parseLevel(level string) logger.Level {
	switch level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func infoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info <isomer>...",
		Short: "Print decay parameters for one or more isomers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := opts.library()
			if err != nil {
				return err
			}

			for _, name := range args {
				iso, err := lib.Isomer(name)
				if err != nil {
					return err
				}
				printIsomer(cmd, iso)
			}

			return nil
		},
	}
}

func chainCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chain <isomer>",
		Short: "Print the decay chain starting at an isomer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := opts.library()
			if err != nil {
				return err
			}

			chain, err := lib.Chain(args[0])
			if err != nil {
				return err
			}

			for _, iso := range chain {
				printIsomer(cmd, iso)
			}

			return nil
		},
	}
}

func nameCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "name <isomer-or-filename>",
		Short: "Convert between isomer name, filename and nuclear data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			n, err := nuclide.FromFilename(id)
			if err != nil {
				n, err = nuclide.FromName(id)
			}
			if err != nil {
				return err
			}

			name, err := n.Name()
			if err != nil {
				return err
			}
			filename, err := n.Filename()
			if err != nil {
				return err
			}

			cmd.Printf("name:          %s\n", name)
			cmd.Printf("filename:      %s\n", filename)
			cmd.Printf("atomic number: %d\n", n.AtomicNumber)
			cmd.Printf("atomic mass:   %d\n", n.AtomicMass)
			cmd.Printf("energy state:  %d\n", n.EnergyState)

			return nil
		},
	}
}

func printIsomer(cmd *cobra.Command, iso *endf.Isomer) {
	cmd.Printf("%s (Z=%d, A=%d, state=%d)\n",
		iso.Name(), iso.AtomicNumber(), iso.AtomicMass(), iso.EnergyState())
	if iso.Stable() {
		cmd.Println("  stable")
		return
	}

	daughter, err := iso.DaughterName()
	if err != nil {
		daughter = "?"
	}
	cmd.Printf("  decay rate: %g 1/s\n", iso.DecayRate())
	cmd.Printf("  daughter:   %s (dZ=%+d, dA=%+d)\n",
		daughter, iso.DecayAtomicNumberChange(), iso.DecayAtomicMassChange())
}
