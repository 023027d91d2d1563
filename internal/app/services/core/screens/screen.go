package screens

import (
	"context"
	"errors"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Dependencies are shared by every controller. Now defaults to time.Now.
type Dependencies struct {
	Session   contracts.SessionStore
	Navigator contracts.Navigator
	Notifier  contracts.Notifier
	Log       *zap.Logger
	Now       func() time.Time
}

// screen is the focus lifecycle common to all controllers. Every Focus and
// Blur bumps the generation; work started under an older generation may
// finish but must not touch state, navigate, or notify.
type screen struct {
	Dependencies
	name string

	lifecycle  sync.Mutex
	generation uint64
	focusCtx   context.Context
	cancel     context.CancelFunc
}

func (s *screen) setup(deps Dependencies, name string) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	s.Dependencies = deps
	s.name = name
}

// enter starts a new focus period and returns its generation.
func (s *screen) enter() uint64 {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.focusCtx, s.cancel = context.WithCancel(context.Background())
	s.generation++
	return s.generation
}

// Blur cancels in-flight work and discards any result that arrives later.
func (s *screen) Blur() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	s.Log.Debug("screen blurred", zap.String(constvars.LoggingScreenKey, s.name))
}

// active derives a context from parent that is also cancelled by Blur, and
// reports the generation it belongs to.
func (s *screen) active(parent context.Context) (context.Context, uint64, context.CancelFunc) {
	s.lifecycle.Lock()
	focusCtx := s.focusCtx
	generation := s.generation
	s.lifecycle.Unlock()

	ctx, cancel := context.WithCancel(parent)
	if focusCtx == nil {
		return ctx, generation, cancel
	}
	stop := context.AfterFunc(focusCtx, cancel)
	return ctx, generation, func() {
		stop()
		cancel()
	}
}

func (s *screen) currentGeneration() uint64 {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	return s.generation
}

func (s *screen) isCurrent(generation uint64) bool {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	return s.generation == generation
}

func (s *screen) navigate(generation uint64, route string) {
	if !s.isCurrent(generation) {
		return
	}
	s.Log.Info("screen navigating",
		zap.String(constvars.LoggingScreenKey, s.name),
		zap.String(constvars.LoggingRouteKey, route),
	)
	s.Navigator.Navigate(route)
}

func (s *screen) notifySuccess(generation uint64, message string) {
	if !s.isCurrent(generation) {
		return
	}
	s.Notifier.Notify(models.Notification{
		Level:   models.NotificationSuccess,
		Title:   constvars.NotificationTitleSuccess,
		Message: message,
	})
}

// fail logs err and shows message, unless the work was cancelled or the
// screen has moved on.
func (s *screen) fail(ctx context.Context, generation uint64, err error, message string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if errors.Is(err, context.Canceled) || !s.isCurrent(generation) {
		s.Log.Debug("screen dropped stale failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreenKey, s.name),
			zap.Error(err),
		)
		return
	}

	s.Log.Error("screen operation failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreenKey, s.name),
		zap.Error(err),
	)
	s.Notifier.Notify(models.Notification{
		Level:   models.NotificationError,
		Title:   constvars.NotificationTitleError,
		Message: message,
	})
}

// resolveSession waits for the session store to settle. With nobody logged
// in it redirects to the login screen and returns ErrSessionMissing.
func (s *screen) resolveSession(ctx context.Context, generation uint64) (*models.Session, error) {
	select {
	case <-s.Session.Ready():
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	current := s.Session.Current()
	if current == nil {
		s.navigate(generation, constvars.RouteLogin)
		return nil, exceptions.ErrSessionMissing
	}
	return current, nil
}

// isSilent reports errors that end a load without a notification.
func isSilent(err error) bool {
	return errors.Is(err, exceptions.ErrSessionMissing) || errors.Is(err, context.Canceled)
}
