package cli

import (
	"fmt"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/mhofbauer/venue-calendar/internal/config"
	"github.com/mhofbauer/venue-calendar/internal/server"
	"github.com/mhofbauer/venue-calendar/internal/storage"
)

var (
	flagServeAddr    string
	flagServeDataDir string
	flagServeFile    string
)

// newServeCmd creates the serve subcommand.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a previously saved calendar as a local viewer",
		RunE:  runServe,
	}

	cmd.Flags().StringVar(&flagServeAddr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&flagServeDataDir, "data-dir", "", "Directory holding the saved calendar")
	cmd.Flags().StringVar(&flagServeFile, "file", storage.DefaultWeekFile, "Calendar file name to serve")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	dataDir := flagServeDataDir
	if dataDir == "" {
		dataDir = config.FromEnv(config.Default()).DataDir
	}

	store, err := storage.New(dataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	muxRouter := mux.NewRouter()
	handler := server.NewCalendarHandler(store, flagServeFile)
	router := server.NewRouter(handler, muxRouter)

	return server.NewServer(router, muxRouter, flagServeAddr).Start()
}
