package cmd

import (
	"fmt"
	"os"

	"github.com/roberto426/Examen2-7234547/config"
	"github.com/roberto426/Examen2-7234547/repository"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "tienda",
	Short: "Tienda - order management backend",
	Long: `Tienda manages clientes, productos, pedidos and their detalles over a
JSON HTTP API, with reports on the most ordered products.

Configuration is read from config/config.yml and can be overridden with
TIENDA_ environment variables (for example TIENDA_DATABASE_HOST).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Extra directory searched for config.yml")
}

func loadConfig() (*config.Config, error) {
	var paths []string
	if configDir != "" {
		paths = append(paths, configDir)
	}
	cfg, err := config.LoadConfig(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func openDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, closeDB, nil
}
