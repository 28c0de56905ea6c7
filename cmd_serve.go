package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ilpload/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve problem assembly over HTTP",
	Long: `Starts an HTTP server with two endpoints:
  POST /assemble  JSON {name, background, positive, negative} -> assembled problem
  POST /prolog    same body plus optional hypothesis -> consultable Prolog program`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAssembler()
		if err != nil {
			return err
		}
		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           server.New(a, logger),
			ReadHeaderTimeout: 10 * time.Second,
		}
		logger.Info("listening", zap.String("addr", serveAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}
