// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type HTTPConfig struct {
	ReadTimeout       time.Duration `json:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout"`
}

type Config struct {
	// Prepended to every route
	BaseURL         string        `json:"baseURL"`
	HTTP            HTTPConfig    `json:"http"`
	AllowedOrigins  []string      `json:"allowedOrigins"`
	AllowedHosts    []string      `json:"allowedHosts"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout"`
}

// Server routes API requests through host filtering, CORS and gzip
// middleware.
type Server struct {
	log    logging.Logger
	config Config
	router *router

	listener net.Listener
	srv      *http.Server
}

func New(log logging.Logger, listener net.Listener, config Config) *Server {
	r := newRouter()
	var handler http.Handler = filterInvalidHosts(r, config.AllowedHosts)
	handler = cors.New(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowCredentials: true,
	}).Handler(handler)
	handler = gziphandler.GzipHandler(handler)

	log.Info("API created",
		zap.Stringer("address", listener.Addr()),
		zap.Strings("allowedOrigins", config.AllowedOrigins),
		zap.Strings("allowedHosts", config.AllowedHosts),
	)
	return &Server{
		log:      log,
		config:   config,
		router:   r,
		listener: listener,
		srv: &http.Server{
			Handler:           handler,
			ReadTimeout:       config.HTTP.ReadTimeout,
			ReadHeaderTimeout: config.HTTP.ReadHeaderTimeout,
			WriteTimeout:      config.HTTP.WriteTimeout,
			IdleTimeout:       config.HTTP.IdleTimeout,
		},
	}
}

// AddRoute serves [handler] at "[BaseURL]/[base][endpoint]".
func (s *Server) AddRoute(handler http.Handler, base, endpoint string) error {
	url := s.config.BaseURL + "/" + base
	s.log.Info("adding route",
		zap.String("url", url),
		zap.String("endpoint", endpoint),
	)
	return s.router.AddRouter(url, endpoint, handler)
}

// Dispatch serves until Shutdown is called.
func (s *Server) Dispatch() error {
	if err := s.srv.Serve(s.listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown waits up to [Config.ShutdownTimeout] for in-flight requests
// before closing every connection.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	_ = s.srv.Close()
	return err
}
