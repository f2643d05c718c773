package main

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/server"
	"github.com/jonathan/resume-tailor/internal/session"
	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		port         int
		discardStale bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local HTTP API",
		Long:  "Start an HTTP server that exposes a tailoring session: submit, current state and a state event stream.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			srv, err := newServer(a, port, discardStale)
			if err != nil {
				return err
			}
			return srv.Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", server.DefaultPort, "Port to listen on")
	cmd.Flags().BoolVar(&discardStale, "discard-stale", false, "Ignore responses to submissions superseded by a newer one")

	return cmd
}

// newServer builds the server and its session from the resolved configuration.
func newServer(a *app, port int, discardStale bool) (*server.Server, error) {
	client, err := tailor.NewClient(tailor.Config{
		BaseURL:      a.cfg.BaseURL(),
		Timeout:      a.cfg.Timeout(),
		StrictSchema: a.cfg.Strict(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	var opts []session.Option
	if discardStale {
		opts = append(opts, session.WithDiscardStale())
	}

	return server.New(server.Config{Port: port, Backend: a.cfg.BaseURL()}, session.New(client, opts...)), nil
}
