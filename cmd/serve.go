package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gaurav-prasanna/recipegrab/api"
	"github.com/gaurav-prasanna/recipegrab/core/fetch"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve recipe grabbing and shopping list merging over HTTP",
	Long: `Serve starts an HTTP server with the endpoints:

  GET  /healthz
  POST /v1/recipes              {"url": "..."}
  POST /v1/shopping-list/merge  {"existing": "...", "lines": [...], "source": "..."}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default: server.addr)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr := flagAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	md, err := newMarkdownRenderer()
	if err != nil {
		return err
	}
	p := newPipeline(fetch.New(cfg.Fetch.Timeout, cfg.Fetch.UserAgent))

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(api.NewHandler(p, md, log)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
