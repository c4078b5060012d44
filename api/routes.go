package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/gst-server/internal/auth"
	"github.com/carson-networks/gst-server/internal/handlers/v1/bankimport"
	"github.com/carson-networks/gst-server/internal/handlers/v1/category"
	"github.com/carson-networks/gst-server/internal/handlers/v1/export"
	"github.com/carson-networks/gst-server/internal/handlers/v1/gstperiod"
	"github.com/carson-networks/gst-server/internal/handlers/v1/login"
	"github.com/carson-networks/gst-server/internal/handlers/v1/settings"
	"github.com/carson-networks/gst-server/internal/handlers/v1/status"
	"github.com/carson-networks/gst-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/gst-server/internal/logging"
	"github.com/carson-networks/gst-server/internal/service"
)

type Rest struct {
	Logger     *logrus.Logger
	Port       string
	Service    *service.Service
	JWTManager *auth.JWTManager
	DB         status.Pinger
}

// Handler builds the HTTP routes: /status and /metrics as plain handlers and
// the /v1 API through huma.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/metrics", promhttp.Handler())

	api := humago.New(mux, huma.DefaultConfig("GST Server", "1.0.0"))
	api.UseMiddleware(
		logging.HumaMiddleware(r.Logger),
		auth.HumaMiddleware(api, r.JWTManager),
	)

	svc := r.Service
	login.NewHandler(svc.Auth).Register(api)
	category.NewListCategoriesHandler().Register(api)

	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewGetTransactionHandler(svc.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(api)
	transaction.NewDashboardHandler(svc.Transaction).Register(api)

	gstperiod.NewListPeriodsHandler(svc.Period).Register(api)
	gstperiod.NewSetPeriodStatusHandler(svc.Period).Register(api)
	gstperiod.NewGSTReturnHandler(svc.Period).Register(api)

	settings.NewHandler(svc.Settings).Register(api)
	bankimport.NewPreviewHandler(svc.Import).Register(api)
	bankimport.NewImportHandler(svc.Import).Register(api)
	export.NewHandler(svc.Export).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
