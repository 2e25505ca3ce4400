package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"travelplanner/internal/app/server/config"
	"travelplanner/internal/utils/logger"
)

var (
	envFile string
	cfg     *config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "travelplanner",
	Short: "Travel Planner - сервер планирования поездок",
	Long: `Travel Planner хранит бюджеты, маршруты, чек-листы, дневники и списки вещей
пользователей и проксирует запросы погоды, авиабилетов и идей для поездок.

Настройки читаются из .env и переменных окружения.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(envFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	log = logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "файл с переменными окружения")

	rootCmd.AddCommand(serveCmd, migrateCmd, accountCmd)
}
