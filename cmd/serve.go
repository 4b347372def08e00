package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/masera/storefront/internal/cms"
	"github.com/masera/storefront/internal/content"
	"github.com/masera/storefront/internal/content/postgres"
	"github.com/masera/storefront/internal/content/sanity"
	"github.com/masera/storefront/internal/models"
	"github.com/masera/storefront/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront content API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "8080", "HTTP port")
	serveCmd.Flags().String("content-source", "sanity", "content source (sanity or postgres)")

	viper.BindPFlag("http_port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("content_source", serveCmd.Flags().Lookup("content-source"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, cleanup, err := buildStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("building content store: %w", err)
	}
	defer cleanup()

	srv := server.New(cfg, store, server.NoopAnalytics{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	return srv.Listen(":" + cfg.HTTPPort)
}

func buildStore(ctx context.Context, cfg *models.Config) (content.Store, func(), error) {
	transformer := cms.NewTransformer(sanity.NewImageBuilder(cfg.Sanity.ProjectID, cfg.Sanity.Dataset))

	switch cfg.ContentSource {
	case "postgres":
		store, err := postgres.NewStore(ctx, cfg.Database, transformer)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case "sanity":
		client := sanity.NewClient(cfg.Sanity)
		cleanup := func() {}
		if cfg.Cache.Enabled {
			cache := content.NewRedisCache(cfg.Cache.RedisAddress, cfg.Cache.RedisDB, cfg.Cache.TTL)
			client = client.WithCache(cache, cfg.Cache.TTL)
			cleanup = func() {
				if err := cache.Close(); err != nil {
					log.Warn().Err(err).Msg("closing cache")
				}
			}
			log.Info().Str("address", cfg.Cache.RedisAddress).Msg("response cache enabled")
		}
		return sanity.NewStore(client, transformer), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown content source %q", cfg.ContentSource)
	}
}
