package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/webstarter/internal/db"
	"github.com/ziadkadry99/webstarter/internal/live"
	"github.com/ziadkadry99/webstarter/internal/search"
	"github.com/ziadkadry99/webstarter/internal/server"
	"github.com/ziadkadry99/webstarter/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive site",
	Long: `Starts the web server. Pages are rendered from the content directory,
and live search, playground previews and theme preferences run over a
WebSocket channel per page.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("watch", false, "reload pages when content changes (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch, _ = cmd.Flags().GetBool("watch")
	}

	s, err := loadSite(cfg)
	if err != nil {
		return err
	}
	holder := site.NewHolder(s)

	// Open database.
	dbPath := filepath.Join(cfg.DataDir, "webstarter.db")
	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	index := search.BuildIndex()
	cache, err := search.NewCache(cfg.SearchCacheSize)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AllowAll:       cfg.AllowAllOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		MinQueryLength: cfg.MinQueryLength,
	}, database, server.Deps{
		Site:  holder,
		Index: index,
		Cache: cache,
		Live:  live.New(holder, liveOptions(cfg, index, cache)),
	})

	if cfg.Watch {
		if cfg.ContentDir == "" {
			fmt.Fprintln(os.Stderr, "Watch ignored: the built-in lessons do not change")
		} else {
			watcher, err := site.NewWatcher(cfg.ContentDir, func() error {
				next, err := loadSite(cfg)
				if err != nil {
					return err
				}
				holder.Replace(next)
				return nil
			}, verbose)
			if err != nil {
				return fmt.Errorf("watching %s: %w", cfg.ContentDir, err)
			}
			watcher.Start()
			defer watcher.Stop()
		}
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	content := cfg.ContentDir
	if content == "" {
		content = "built-in lessons"
	}
	fmt.Fprintf(os.Stderr, "webstarter v%s starting on port %d\n", Version, cfg.Port)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "  Content: %s (%d pages)\n", content, len(s.Pages()))
	if verbose {
		fmt.Fprintf(os.Stderr, "  Search index: %d documents\n", len(index))
		fmt.Fprintf(os.Stderr, "  Default theme: %s\n", cfg.DefaultTheme)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
