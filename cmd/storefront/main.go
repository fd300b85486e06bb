package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wollendesigns/storefront/internal/config"
	"github.com/wollendesigns/storefront/internal/item"
	"github.com/wollendesigns/storefront/internal/notify"
	"github.com/wollendesigns/storefront/internal/order"
	"github.com/wollendesigns/storefront/internal/postgres"
	"github.com/wollendesigns/storefront/internal/user"
)

func main() {
	cfg := config.Load()

	policy, err := order.ParseStockPolicy(cfg.StockPolicy)
	if err != nil {
		log.Fatalf("[storefront] %v", err)
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("[storefront] create upload dir: %v", err)
	}

	// The database is dialed lazily on the first request; startup does not
	// require the server to be reachable.
	db := postgres.NewManager(cfg.PostgresDSN)
	defer db.Close()

	items := item.NewPGRepo(db)
	notifier := notify.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	orders := order.NewService(order.NewPGRepo(db), items, notifier, policy)
	users := user.NewService(user.NewPGRepo(db), user.NewSessions(24*time.Hour))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: newRouter(cfg, users, items, orders),
	}

	go func() {
		log.Printf("[storefront] listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[storefront] http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("[storefront] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[storefront] shutdown: %v", err)
	}
}
