package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fairpaycheck/fairpaycheck/internal/logger"
	"github.com/fairpaycheck/fairpaycheck/internal/refdata"
	"github.com/fairpaycheck/fairpaycheck/internal/scoring"
	"github.com/fairpaycheck/fairpaycheck/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the fairpaycheck scoring API server",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", defaultListen, "address to listen on")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting fairpaycheck", zap.String("version", version))

	dataset, err := loadDataset(config)
	if err != nil {
		logger.Fatal("loading reference data", zap.Error(err))
	}

	logger.Info("reference data loaded",
		zap.String("data_version", dataset.Version),
		zap.Int("countries", len(dataset.Countries)),
		zap.Int("role_categories", len(dataset.RoleCatalog)),
	)

	engine := scoring.New(dataset, logger)

	srv, err := server.New(engine, logger, config.Listen)
	if err != nil {
		logger.Fatal("building the server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down", zap.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}
}

// loadDataset builds the process-wide reference dataset: defaults, or
// defaults merged with the configured override file.
func loadDataset(config *Config) (*refdata.Dataset, error) {
	if config.DataFile != "" {
		return refdata.LoadFile(config.DataFile)
	}

	dataset := refdata.Default()
	if err := dataset.Validate(); err != nil {
		return nil, err
	}

	return dataset, nil
}
