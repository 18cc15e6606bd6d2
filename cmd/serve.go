package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"eatery/configs"
	"eatery/routes"
	"eatery/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := connect()
		if err != nil {
			return err
		}
		if err := cfg.CheckSecrets(); err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		images, err := newImageStore(ctx, cfg)
		if err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(ctx)

		r := gin.Default()
		if err := routes.RegisterRoutes(gctx, r, configs.DB(), cfg, images); err != nil {
			return err
		}
		srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

		g.Go(func() error {
			log.Println("🚀 Server running at", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		err = g.Wait()
		log.Println("server stopped")
		return err
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
}

func newImageStore(ctx context.Context, cfg *configs.Config) (storage.ImageStore, error) {
	switch cfg.ImageStore {
	case "", "local":
		return storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL+"/uploads"), nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3_BUCKET is required when IMAGE_STORE=s3")
		}
		return storage.NewS3Store(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3PublicBaseURL)
	}
	return nil, fmt.Errorf("unknown IMAGE_STORE %q", cfg.ImageStore)
}
