// Command folio serves a folio blog and manages its post snapshot.
package main

import (
	"fmt"
	"os"

	"github.com/eringen/folio"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	configPath string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A small blog engine with category and tag filtering",
	Long:  "folio keeps a blog's posts as one snapshot in a local SQLite file, serves them over HTTP and manages them from the terminal.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional
		_ = godotenv.Load()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "folio.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $FOLIO_DATABASE_PATH or data/folio.db)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the folio version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("folio %s\n", version)
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (folio.SiteConfig, error) {
	cfg, err := folio.LoadConfig(configPath)
	if err != nil {
		return folio.SiteConfig{}, err
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	return cfg, nil
}

// session is the store-level state CLI commands work on.
type session struct {
	cfg   folio.SiteConfig
	kv    *folio.SQLiteKV
	store *folio.PostStore
}

func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger()
	logger.SetOutput(os.Stderr)

	seed, err := folio.LoadSeedFile(cfg.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	kv, err := folio.OpenSQLiteKV(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:   cfg,
		kv:    kv,
		store: folio.NewPostStore(kv, cfg.SnapshotKey, seed, logger),
	}, nil
}

func (s *session) Close() error {
	return s.kv.Close()
}
