package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/alexwulf/alloy-configurator/internal/ctxlog"
	"github.com/alexwulf/alloy-configurator/internal/registry"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
)

// Server hosts editing sessions over socket.io plus a plain /health
// endpoint on the same listener.
type Server struct {
	addr string
	lang *syntax.Language
	reg  *registry.Registry

	mu    sync.Mutex
	lis   net.Listener
	ready chan struct{}
}

// New creates a server. addr uses net.Listen syntax; ":0" picks a free
// port, which tests rely on.
func New(addr string, lang *syntax.Language, reg *registry.Registry) *Server {
	return &Server{
		addr:  addr,
		lang:  lang,
		reg:   reg,
		ready: make(chan struct{}),
	}
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound listen address. Valid after Ready.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lis == nil {
		return ""
	}
	return s.lis.Addr().String()
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	io := socket.NewServer(nil, nil)
	io.On("connection", func(clients ...any) {
		client, ok := clients[0].(*socket.Socket)
		if !ok {
			return
		}
		s.handleConnection(ctx, client)
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", io.ServeHandler(nil))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})

	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", s.addr, err)
	}
	s.mu.Lock()
	s.lis = lis
	s.mu.Unlock()
	close(s.ready)

	httpSrv := &http.Server{Handler: mux}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down editing server.")
		io.Close(nil)
		_ = httpSrv.Shutdown(context.Background())
	}()

	logger.Info("Editing server listening.", "address", lis.Addr().String())
	if err := httpSrv.Serve(lis); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
