package main

import (
	"io"
	"net/http"
	"os"

	"github.com/flimzy/log"
	"github.com/gorilla/handlers"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve a generated site for preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return errors.Errorf("%s: not a directory", dir)
			}
			log.Printf("Serving %s via HTTP on %s\n", dir, addr)
			return http.ListenAndServe(addr, staticHandler(dir, cmd.ErrOrStderr()))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "address to listen on")
	return cmd
}

// staticHandler serves the files under dir, writing an access log to w.
func staticHandler(dir string, w io.Writer) http.Handler {
	return handlers.LoggingHandler(w, http.FileServer(http.Dir(dir)))
}
