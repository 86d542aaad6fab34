package impl

import (
	"context"
	"log/slog"
	"time"

	"weightwise/internal/domain/repository"

	"go.uber.org/fx"
)

// sweepInterval is how often expired session rows are removed.
const sweepInterval = time.Hour

// SessionSweeper periodically deletes expired session rows. Expired sessions
// are already rejected at authentication time; the sweeper just keeps the
// table from growing without bound.
type SessionSweeper struct {
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
	stop        chan struct{}
	done        chan struct{}
}

// SessionSweeperParams holds dependencies for SessionSweeper, injected by Fx.
type SessionSweeperParams struct {
	fx.In

	Lc          fx.Lifecycle
	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewSessionSweeper builds the sweeper and hooks it into the fx lifecycle.
func NewSessionSweeper(params SessionSweeperParams) *SessionSweeper {
	sweeper := &SessionSweeper{
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(sweeper.stop)
			select {
			case <-sweeper.done:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return sweeper
}

func (s *SessionSweeper) run() {
	defer close(s.done)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *SessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	swept, err := s.sessionRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to sweep expired sessions", slog.Any("error", err))

		return
	}

	if swept > 0 {
		s.logger.Info("Swept expired sessions", slog.Int64("count", swept))
	}
}
