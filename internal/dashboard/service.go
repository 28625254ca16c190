// Package dashboard implements the operations behind the technician and
// admin screens. It loads records from the store, runs them through the
// compliance engine and announces changes on the websocket hub.
package dashboard

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dukerupert/techarena/internal/store"
	ws "github.com/dukerupert/techarena/internal/websocket"
)

// Broadcaster receives change notifications. *websocket.Hub satisfies it.
type Broadcaster interface {
	Broadcast(ws.Message)
}

type Options struct {
	DefaultPassword string
	SessionTTL      time.Duration
}

type Service struct {
	users    *store.UserStore
	tasks    *store.TaskStore
	shifts   *store.ExtraShiftStore
	sessions *store.SessionStore
	hub      Broadcaster
	opts     Options
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

func New(db *sql.DB, hub Broadcaster, opts Options, logger *slog.Logger) *Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * 24 * time.Hour
	}
	return &Service{
		users:    store.NewUserStore(db),
		tasks:    store.NewTaskStore(db),
		shifts:   store.NewExtraShiftStore(db),
		sessions: store.NewSessionStore(db),
		hub:      hub,
		opts:     opts,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *Service) broadcast(msg ws.Message) {
	if s.hub != nil {
		s.hub.Broadcast(msg)
	}
}

// checkStruct runs tag validation and folds failures into ErrValidation.
func (s *Service) checkStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
