package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/mandrill/filter"
	"github.com/s0up4200/mandrill/webhook"
)

var (
	listenAddr   string
	listenFilter string
)

// listenCmd runs the webhook receiver
var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Receive webhook events and print them",
	Long: `Run an HTTP server that accepts Mandrill webhook batches and prints each
event as one JSON line.

Set webhook.key and webhook.url in the config to verify the
X-Mandrill-Signature header of every batch.`,
	Args: cobra.NoArgs,
	RunE: runListen,
}

func init() {
	listenCmd.Flags().StringVar(&listenAddr, "addr", "", "listen address (default from webhook.addr)")
	listenCmd.Flags().StringVarP(&listenFilter, "filter", "f", "", "only print events matching this expression or configured filter")
}

func runListen(cmd *cobra.Command, args []string) error {
	addr := cfg.Webhook.Addr
	if listenAddr != "" {
		addr = listenAddr
	}

	var f *filter.Filter
	if listenFilter != "" {
		var err error
		if f, err = compileFilter(listenFilter); err != nil {
			return err
		}
	}

	if cfg.Webhook.Key == "" {
		logger.Warn().Msg("webhook.key is not set, signatures will not be verified")
	}

	var mu sync.Mutex
	out := json.NewEncoder(cmd.OutOrStdout())
	sink := func(event webhook.Event) {
		if f != nil && !f.Match(eventRecord(event)) {
			return
		}
		logger.Info().Str("event", event.Kind()).Str("id", event.ID).Time("ts", event.Timestamp).Msg("Webhook event")

		mu.Lock()
		defer mu.Unlock()
		if err := out.Encode(event.Raw); err != nil {
			logger.Error().Err(err).Msg("Failed to write event")
		}
	}

	handler := webhook.NewHandler(webhook.Config{
		Key:  cfg.Webhook.Key,
		URL:  cfg.Webhook.URL,
		Path: cfg.Webhook.Path,
	}, logger, sink)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Str("path", cfg.Webhook.Path).Msg("Listening for webhooks")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("webhook server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down webhook server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// eventRecord exposes an event to filters as its decoded JSON object
func eventRecord(event webhook.Event) any {
	record, err := decodeJSONArg("event", string(event.Raw))
	if err != nil {
		return map[string]any{}
	}
	return record
}
