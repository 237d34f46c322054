package server

import (
	"context"
	"github.com/senti270/work-schedule-web/internal/config"
	"github.com/senti270/work-schedule-web/internal/httpd"
	"github.com/senti270/work-schedule-web/internal/resolver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type Server struct {
	httpd *httpd.Server
}

// New builds the server. root is the absolute document root.
func New(config *config.Config, root string) *Server {
	r := resolver.New(afero.NewOsFs(), root, resolver.Options{
		Index: config.Static.Index,
	})

	return &Server{
		httpd: httpd.NewServer(config, r),
	}
}

// Run serves until ctx is done. It returns early with the start error when
// the listener cannot be bound.
func (s *Server) Run(ctx context.Context) error {
	logrus.Debug("Starting...")
	defer logrus.Debug("Stopped")

	select {
	case <-s.httpd.Start():
	case <-ctx.Done():
		return s.httpd.StopAndWait()
	}
	if err := s.httpd.StartError(); err != nil {
		return err
	}
	<-ctx.Done()

	logrus.Debug("Stopping...")
	return s.httpd.StopAndWait()
}
