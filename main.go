package main

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/gst-server/api"
	"github.com/carson-networks/gst-server/internal/auth"
	"github.com/carson-networks/gst-server/internal/config"
	"github.com/carson-networks/gst-server/internal/logging"
	"github.com/carson-networks/gst-server/internal/operator"
	"github.com/carson-networks/gst-server/internal/service"
	"github.com/carson-networks/gst-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logrus.Info("gst-server starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbStorage := storage.NewStorage(envConfig)
	defer dbStorage.DB.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, envConfig.OperatorQueueSize)
	delegator.Start()
	defer delegator.Stop()

	jwtManager := auth.NewJWTManager(envConfig.AuthJWTSecret, envConfig.AuthSessionDuration)
	authService := service.NewAuthService(
		delegator,
		jwtManager,
		&auth.LogMailer{Logger: logger},
		envConfig.AuthLinkTTL,
		envConfig.PublicBaseURL,
	)
	svc := service.NewService(dbStorage, delegator, authService)

	httpRest := api.Rest{
		Logger:     logger,
		Port:       strconv.Itoa(envConfig.HTTPPort),
		Service:    svc,
		JWTManager: jwtManager,
		DB:         dbStorage.DB,
	}
	httpRest.Serve(ctx)
}
