package bootstrap

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// AuditLogger mencatat siklus hidup server (start/stop) terpisah dari
// log aplikasi.
type AuditLogger interface {
	Event(msg string)
}

type stdoutAuditLogger struct{}

func NewStdoutAuditLogger() AuditLogger {
	return stdoutAuditLogger{}
}

func (stdoutAuditLogger) Event(msg string) {
	log.Printf("[AUDIT] %s", msg)
}

// StartHTTPServer menjalankan server dan blok sampai SIGINT/SIGTERM,
// lalu graceful shutdown maksimal 10 detik.
func StartHTTPServer(router *gin.Engine, cfg ServerConfig, audit AuditLogger) {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		audit.Event("HTTP server listening on :" + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	audit.Event("HTTP server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("HTTP server forced to shutdown: %v", err)
	}

	audit.Event("HTTP server stopped")
}
