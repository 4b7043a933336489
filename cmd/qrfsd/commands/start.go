package commands

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/marmos91/qrfs/internal/logger"
	"github.com/marmos91/qrfs/pkg/metrics"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the QRFS coordinator until interrupted",
	Long: `Start loads configuration, brings up a Coordinator over the
configured RemoteFs backend, and blocks until SIGINT/SIGTERM, exercising
the reconciler and, if enabled, serving Prometheus metrics.`,
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	coord, err := buildCoordinator(cfg)
	if err != nil {
		return fmt.Errorf("build coordinator: %w", err)
	}

	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
		addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
		go func() {
			logger.Info("metrics server listening", "addr", addr)
			if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	logger.Info("qrfs coordinator started",
		"remote_kind", cfg.Remote.Kind,
		"upload_to_remote", cfg.Coordinator.UploadToRemote)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	signal.Stop(sigChan)

	logger.Info("shutdown signal received")
	if err := coord.Stop(); err != nil {
		logger.Error("coordinator stop error", "error", err)
	}
	coord.Wait()
	logger.Info("qrfs coordinator stopped")
	return nil
}
