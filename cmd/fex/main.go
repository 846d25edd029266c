package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	apppkg "github.com/g0at1/fex/internal/app"
	"github.com/g0at1/fex/internal/config"
	"github.com/g0at1/fex/internal/log"
)

var version = "dev"

func main() {
	var (
		pickMode   bool
		startDir   string
		configPath string
		debugLog   string
	)

	rootCmd := &cobra.Command{
		Use:     "fex [directory]",
		Short:   "A keyboard-driven terminal file browser",
		Long:    "fex browses directories with vim-style keys, filters entries with regular expressions,\nruns shell commands from an embedded command line, and pages their output.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if debugLog != "" {
				if err := log.Setup(debugLog); err != nil {
					return fmt.Errorf("cannot open log file: %w", err)
				}
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			startPath := startDir
			if startPath == "" && len(args) > 0 {
				startPath = args[0]
			}
			if startPath != "" {
				startPath, err = filepath.Abs(startPath)
				if err != nil {
					return err
				}
			}

			// UTF-8 fallback keeps non-ASCII names rendering on limited
			// terminals.
			tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

			app, err := apppkg.NewApplication(apppkg.Options{
				StartPath: startPath,
				PickMode:  pickMode,
				Config:    cfg,
			})
			if err != nil {
				return fmt.Errorf("cannot start: %w", err)
			}

			runErr := app.Run()
			picked := app.PickedPath()
			_ = app.Close()

			if runErr != nil {
				return runErr
			}
			if pickMode && picked != "" {
				fmt.Println(picked)
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&pickMode, "pick", false, "exit on file selection and print the chosen path to stdout")
	rootCmd.Flags().StringVar(&startDir, "path", "", "start directory (same as the positional argument)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&debugLog, "debug-log", "", "append debug logs to this file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Load(config.DefaultPath())
}
