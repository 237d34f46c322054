package async

import (
	"context"
	"sync"
)

// Service runs one loop in its own goroutine. The loop closes started once it
// is ready to serve and returns when its context is cancelled.
type Service interface {
	Start() <-chan struct{}
	StartAndWait() error
	Started() <-chan struct{}
	StartError() error

	Stop() <-chan struct{}
	StopAndWait() error
	Stopped() <-chan struct{}
	StopError() error
}

type ServiceLoop func(ctx context.Context, started chan<- struct{}) error

func NewService(loop ServiceLoop) Service {
	if loop == nil {
		panic("async: nil service loop")
	}

	return &service{
		loop:    loop,
		started: make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

type service struct {
	loop ServiceLoop
	mu   sync.Mutex

	ctx      context.Context
	cancel   context.CancelFunc
	startErr error
	stopErr  error

	started chan struct{}
	stopped chan struct{}
}

func (s *service) Start() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		go s.main(s.ctx)
	}
	return s.started
}

func (s *service) StartAndWait() error {
	<-s.Start()
	return s.StartError()
}

func (s *service) Started() <-chan struct{} {
	return s.started
}

func (s *service) StartError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startErr
}

func (s *service) Stop() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx == nil {
		// Never started.
		s.ctx = context.Background()
		close(s.started)
		close(s.stopped)
	} else if s.cancel != nil {
		s.cancel()
	}
	return s.stopped
}

func (s *service) StopAndWait() error {
	<-s.Stop()
	return s.StopError()
}

func (s *service) Stopped() <-chan struct{} {
	return s.stopped
}

func (s *service) StopError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopErr
}

func (s *service) main(ctx context.Context) {
	defer close(s.stopped)
	defer closeOrDefault(s.started)

	err := s.loop(ctx, s.started)

	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.started:
		s.stopErr = err
	default:
		s.startErr = err
	}
}

func closeOrDefault(ch chan struct{}) {
	select {
	case <-ch:
	default:
		close(ch)
	}
}
