package httpd

import (
	"context"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/senti270/work-schedule-web/internal/async"
	"github.com/senti270/work-schedule-web/internal/config"
	"github.com/senti270/work-schedule-web/internal/resolver"
	"github.com/sirupsen/logrus"
	"net"
	"time"
)

const (
	shutdownTimeout = 10 * time.Second

	// Request lines and headers up to 16 KB, the limit Node servers use.
	readBufferSize = 16 << 10
)

type Server struct {
	async.Service
	config   *config.Config
	resolver *resolver.Resolver

	addr net.Addr // Set by the loop before started is closed.
}

func NewServer(config *config.Config, resolver *resolver.Resolver) *Server {
	s := &Server{
		config:   config,
		resolver: resolver,
	}
	s.Service = async.NewService(s.serveHTTP)
	return s
}

// Addr is the bound listener address. Valid once Started is closed without a
// start error.
func (s *Server) Addr() net.Addr {
	return s.addr
}

func (s *Server) app() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadBufferSize:        readBufferSize,
	})

	app.Use(s.loggerMiddleware)
	if s.config.Http.CORS {
		app.Use(s.corsMiddleware)
	}
	app.Use(s.errorMiddleware)

	s.static(app)
	return app
}

// Run loop

func (s *Server) serveHTTP(ctx context.Context, started chan<- struct{}) error {
	defer logrus.WithContext(ctx).Info("HTTP stopped")

	ln, err := net.Listen("tcp", s.config.Http.Listen)
	if err != nil {
		logrus.WithContext(ctx).Errorf("Failed to listen to %s, err=%v", s.config.Http.Listen, err)
		return err
	}
	s.addr = ln.Addr()

	app := s.app()
	errorChan := make(chan error, 1)
	go func() {
		defer func() {
			if e := recover(); e != nil {
				logrus.WithContext(ctx).Warnf("Panic in HTTP, err=%v", e)

				select {
				case errorChan <- fmt.Errorf("httpd: recovered from panic: %v", e):
				default:
				}
			}
		}()
		err := app.Listener(ln)
		logrus.WithContext(ctx).WithError(err).Debug("HTTP server exited")

		select {
		case errorChan <- err:
		default:
		}
	}()

	s.banner(ctx)
	close(started)

	select {
	case err := <-errorChan:
		return err
	case <-ctx.Done():
	}
	logrus.WithContext(ctx).Info("Stopping HTTP...")

	return app.ShutdownWithTimeout(shutdownTimeout)
}

func (s *Server) banner(ctx context.Context) {
	port := s.config.Port()
	if tcp, ok := s.addr.(*net.TCPAddr); ok {
		port = fmt.Sprint(tcp.Port)
	}

	logrus.WithContext(ctx).Infof("Server running at http://localhost:%s/", port)
	logrus.WithContext(ctx).Infof("Server also accessible at http://127.0.0.1:%s/", port)
	logrus.WithContext(ctx).Debugf("Serving %s", s.resolver.Root())
}
