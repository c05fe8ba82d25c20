package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/clinic-scheduler/internal/calendar"
	"github.com/username/clinic-scheduler/internal/config"
	"github.com/username/clinic-scheduler/internal/planner"
	"github.com/username/clinic-scheduler/internal/schedule"
	"github.com/username/clinic-scheduler/internal/store"
)

var (
	configPath string
	envFile    string
	cfg        *config.Config
	logger     *zap.Logger
	manager    *planner.Manager
	holidays   calendar.HolidaySource
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "clinic-scheduler",
		Short:         "Clinic doctor schedule manager",
		Long:          "Generate and edit monthly doctor schedules from weekly patterns, recurring rules and holidays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}

			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.GetLevel())
				if err != nil {
					logger = initLogger(cfg.Log.GetLevel()) // Fallback to console
				}
			} else {
				logger = initLogger(cfg.Log.GetLevel())
			}

			return initializeManager()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Env file loaded before the config")

	rootCmd.AddCommand(
		initCmd(),
		generateCmd(),
		showCmd(),
		noticeCmd(),
		clearCmd(),
		editCmd(),
		toggleCmd(),
		resetCmd(),
		doctorCmd(),
		ruleCmd(),
		holidayCmd(),
	)

	return rootCmd
}

func initializeManager() error {
	var err error
	holidays, err = calendar.New(calendar.Options{
		Source:   cfg.Holidays.Source,
		File:     cfg.Holidays.File,
		URL:      cfg.Holidays.URL,
		CacheTTL: cfg.Holidays.GetCacheTTL(),
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize holiday source: %w", err)
	}

	logger.Debug("Holiday source ready", zap.String("source", cfg.Holidays.Source))

	st := store.New(cfg.Store.Dir, logger)
	manager = planner.NewManager(st, holidays, schedule.NewGenerator(), cfg.Schedule.DefaultNotice, logger)
	return nil
}
