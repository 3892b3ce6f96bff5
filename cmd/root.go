package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lromero/almacen/actlog"
	"github.com/lromero/almacen/config"
	"github.com/lromero/almacen/console"
	"github.com/lromero/almacen/session"
	"github.com/lromero/almacen/store"
)

var rootCmdPersistentFlags struct {
	ConfigFile string
	LogLevel   string
	LogFile    string
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootCmdPersistentFlags.ConfigFile, "config", "c", "", "Path to config file (default: search for config.yml in current dir, ~/.almacen, /etc/almacen)")
	rootCmd.PersistentFlags().StringVar(&rootCmdPersistentFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error) - overrides config file setting")
	rootCmd.PersistentFlags().StringVar(&rootCmdPersistentFlags.LogFile, "log-file", "", "File to write logs to")
}

var rootCmd = &cobra.Command{
	Use:   "almacen",
	Short: "Almacen is a local inventory management console",
	Long: `Almacen manages a product inventory stored in a local SQLite database.
Running it without a subcommand starts the interactive console: log in
(or register a user), then add, list, search, update and delete products
and generate low-stock reports.`,
	Example: `almacen --config config.yml
  almacen report --threshold 10
  almacen reset-users --yes`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logToFile()
	},
	RunE: root,
}

func root(cmd *cobra.Command, _ []string) error {
	cfg, st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	ui := console.New(session.New(st), actlog.New(cfg.ActivityLogPath))
	return ui.Run(cmd.Context())
}

// openStore loads the configuration, applies the log level, opens the
// database and ensures the schema. Shared by every command.
func openStore(cmd *cobra.Command) (*config.Config, *store.Store, error) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if rootCmdPersistentFlags.LogLevel != "" {
		level = rootCmdPersistentFlags.LogLevel
	}
	setLogLevel(level)

	st, err := store.New(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := st.EnsureSchema(cmd.Context()); err != nil {
		st.Close() //nolint:errcheck
		return nil, nil, fmt.Errorf("failed to prepare database schema: %w", err)
	}
	return cfg, st, nil
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warnf("unknown log level %s, defaulting to info", level)
		log.SetLevel(log.InfoLevel)
	}
}

func logToFile() {
	if rootCmdPersistentFlags.LogFile == "" {
		return
	}
	file, err := os.OpenFile(rootCmdPersistentFlags.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec
	if err != nil {
		log.Errorf("failed to open log file: %v", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, file))
	log.Info("logging to both console and file", "file", rootCmdPersistentFlags.LogFile)
}

func Execute() error {
	return rootCmd.Execute()
}
