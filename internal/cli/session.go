package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mesh-intelligence/todos/internal/app"
	"github.com/mesh-intelligence/todos/internal/ids"
	"github.com/mesh-intelligence/todos/internal/paths"
	"github.com/mesh-intelligence/todos/internal/store"
)

// session is one opened store with the controller over it.
type session struct {
	settings settings
	store    *store.Store
	app      *app.App
	log      *slog.Logger
	logFile  *os.File
}

// open resolves the configuration, sets up logging and loads the list.
func (o *rootOptions) open() (*session, error) {
	st, err := o.resolve()
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(st.LogFile)
	if err != nil {
		return nil, systemError(err)
	}

	s, err := store.Open(st.Store, logger)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, systemError(err)
	}

	return &session{
		settings: st,
		store:    s,
		app:      app.New(s, ids.New(), logger),
		log:      logger,
		logFile:  logFile,
	}, nil
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		s.log.Error("close store", "err", err)
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// newLogger returns a JSON logger appending to path, or a logger that
// discards everything when path is empty.
func newLogger(path string) (*slog.Logger, *os.File, error) {
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), nil, nil
	}
	abs, err := paths.Abs(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(abs, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f, nil
}
