package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/review-dashboard/gateway/config"
	"github.com/Astemirdum/review-dashboard/gateway/internal/handler"
	"github.com/Astemirdum/review-dashboard/gateway/internal/server"
	"github.com/Astemirdum/review-dashboard/pkg/kafka"
	"github.com/Astemirdum/review-dashboard/pkg/logger"
	"go.uber.org/zap"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "gateway")

	if err := kafka.CreateTopics(cfg.Kafka); err != nil {
		log.Warn("create topics", zap.Error(err))
	}
	// the gateway serves without brokers: audit publishing degrades to a no-op
	producer, err := kafka.NewSyncProducer(cfg.Kafka)
	if err != nil {
		log.Warn("kafka producer unavailable, audit events disabled", zap.Error(err))
	} else {
		defer producer.Close()
	}

	h := handler.New(log, cfg, producer)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}

	log.Info("Graceful shutdown finished")
	return nil
}
