// Package monodelta implements the monodelta CLI commands using cobra.
package monodelta

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rowdymehul/mononoke/bookmarks"
	"github.com/rowdymehul/mononoke/internal/config"
	"github.com/rowdymehul/mononoke/internal/logging"
)

var (
	configFile string

	cfg *config.Config
	log = mustDefaultLogger()
)

// mustDefaultLogger gives log a usable value before PersistentPreRunE runs,
// so subcommand functions called directly (e.g. from tests) never see a nil
// Logger. loadConfig replaces it with one built from the resolved config.
func mustDefaultLogger() logging.Logger {
	l, err := logging.New(os.Stderr, "info", "text")
	if err != nil {
		panic(err)
	}
	return l
}

// rootCmd is the base command when monodelta is invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "monodelta",
	Short: "Inspect and replay content-addressed delta chains",
	Long: `monodelta applies and composes Fragment/Delta chains stored as
content-addressed blobs, and manages the bookmarks registry that names
revisions.`,
	Version:           "0.1.0",
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command. Called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (optional; defaults apply if omitted)")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(bookmarksCmd)
}

// loadConfig loads internal/config once per invocation, before any
// subcommand runs, and wires internal/logging from the resolved settings.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}
	cfg = loaded

	l, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	if cfg.Log.File.Enabled {
		fileWriter := logging.RotatingFileWriter(logging.RotatingFileOptions{
			Filename:   cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		})
		l, err = logging.New(fileWriter, cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
	}
	log = l

	return nil
}

func openBookmarks() (*bookmarks.Registry, error) {
	reg := bookmarks.NewRegistry()
	if err := reg.Load(cfg.BookmarksFile); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return reg, nil
}
