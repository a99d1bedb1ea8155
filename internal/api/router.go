package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/api/handlers/http/admin"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/api/handlers/http/public"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/api/handlers/http/system"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/config"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/middleware"
	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc.AdminService, svc.DirectoryService)
	publicHandler := public.NewHandler(logger, svc.DispatchService, svc.DirectoryService, svc.InventoryService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/alerts", adminHandler.AdminAlertList)

			ar.Route("/hospitals", func(hr chi.Router) {
				hr.Post("/", adminHandler.AdminHospitalCreate)
				hr.Get("/", adminHandler.AdminHospitalList)

				hr.Route("/{id}", func(rr chi.Router) {
					rr.Put("/", adminHandler.AdminHospitalUpdate)
					rr.Delete("/", adminHandler.AdminHospitalDelete)
				})
			})
		})

		// SOS
		api.Route("/sos", func(sr chi.Router) {
			sr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			sr.Post("/", publicHandler.SOSCreate)
			sr.Get("/requester/{id}", publicHandler.SOSListForRequester)
			sr.Get("/{id}/donors", publicHandler.SOSDonors)
		})

		// HOSPITAL
		api.Route("/hospital/{id}", func(hr chi.Router) {
			hr.Get("/alerts", publicHandler.HospitalPending)
			hr.Post("/respond", publicHandler.HospitalRespond)
			hr.Get("/inventory", publicHandler.HospitalInventoryGet)
			hr.Put("/inventory", publicHandler.HospitalInventorySet)
		})

		// DONOR
		api.Route("/donor/{id}", func(dr chi.Router) {
			dr.Post("/respond", publicHandler.DonorRespond)
			dr.Put("/profile", publicHandler.DonorProfileUpdate)
		})

		// USERS
		api.Route("/users/{id}", func(ur chi.Router) {
			ur.Put("/location", publicHandler.UserLocationUpdate)
			ur.Get("/hospitals/nearby", publicHandler.NearbyHospitals)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
