package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/goccy/go-json"
	"github.com/kasuboski/flixboard/pkg/analysis"
	"github.com/kasuboski/flixboard/pkg/dashboard"
	"github.com/kasuboski/flixboard/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies for the dashboard api such as loggers and the dashboard itself
type Server struct {
	baseLogger *zap.SugaredLogger
	dashboard  dashboard.Dashboard
}

// New creates a new dashboard server
func New(logger *zap.SugaredLogger, dashboard dashboard.Dashboard) Server {
	return Server{
		baseLogger: logger,
		dashboard:  dashboard,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// errorStatus maps a dashboard error to the status it is reported with
func errorStatus(err error) int {
	var paramErr *ParamError
	if errors.As(err, &paramErr) || errors.Is(err, analysis.ErrInvalidFilter) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Router builds the routes and middleware of the api
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.Use(s.MetricsMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)
	rtr.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/options", s.GetOptions()).Methods(http.MethodGet)
	v1.HandleFunc("/dashboard", s.GetDashboard()).Methods(http.MethodGet)
	v1.HandleFunc("/kpis", s.GetKPIs()).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet}),
	)(rtr)
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// GetOptions returns the values the filter controls offer
func (s Server) GetOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		opts, err := s.dashboard.Options(r.Context())
		if err != nil {
			log.Error("failed to build filter options", zap.Error(err))
			writeErrorResponse(w, errorStatus(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: opts})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}

// GetDashboard renders every chart and table for the filter in the query
func (s Server) GetDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		spec, err := ParseFilterParams(r)
		if err != nil {
			log.Debug("invalid filter params", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		view, err := s.dashboard.Build(r.Context(), spec)
		if err != nil {
			status := errorStatus(err)
			if status == http.StatusInternalServerError {
				log.Error("failed to build dashboard", zap.Error(err))
			}
			writeErrorResponse(w, status, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: view})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}

// GetKPIs returns only the counters for the filter in the query
func (s Server) GetKPIs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		spec, err := ParseFilterParams(r)
		if err != nil {
			log.Debug("invalid filter params", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		kpis, err := s.dashboard.KPIs(r.Context(), spec)
		if err != nil {
			status := errorStatus(err)
			if status == http.StatusInternalServerError {
				log.Error("failed to compute kpis", zap.Error(err))
			}
			writeErrorResponse(w, status, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: kpis})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}
