package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/keypals/internal/store"
)

var (
	envFile string

	envKeyReplacer = strings.NewReplacer("-", "_")
)

var rootCmd = &cobra.Command{
	Use:   "keypals",
	Short: "Calm typing practice with story lessons",
	Long: "Keypals is a terminal typing tutor. It builds multi-session lesson plans from a\n" +
		"template catalog and writes each session with an LLM, falling back to a built-in\n" +
		"library when no model is available.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KEYPALS_DB)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-mode", "dev", "Log encoding: dev (console) or prod (JSON)")
	rootCmd.PersistentFlags().Bool("outline", false, "Ask the model for an advisory plan outline")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file to load before reading KEYPALS_* variables")

	for _, name := range []string{"db", "log-level", "log-mode", "outline"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "bind flag %s: %v\n", name, err)
		}
	}

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads the dotenv file (a missing file is fine) and maps
// KEYPALS_* variables onto the bound flags, e.g. KEYPALS_LOG_LEVEL.
func initConfig() {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", envFile, err)
		}
	}

	viper.SetEnvPrefix("KEYPALS")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()
}

// resolveDBPath returns the database path using --db / KEYPALS_DB first,
// then the default XDG path.
func resolveDBPath() (string, error) {
	if p := viper.GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store at the resolved path.
func openStore(ctx context.Context) (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
