package service

import (
	"context"
	"sync"
	"time"

	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	defaultAuditQueue = 256
	auditWriteTimeout = 5 * time.Second
)

// OperatorAudit queues operator actions and persists them from one worker, so
// a slow database never holds up the request that produced the action.
// Actions logged after Close, or while the queue is full, reach the logger only.
type OperatorAudit struct {
	repo  ports.AuditRepository
	log   zerolog.Logger
	queue chan *domain.OperatorAction

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewOperatorAudit starts the worker. A nil repo keeps actions in the log only.
func NewOperatorAudit(repo ports.AuditRepository, log zerolog.Logger, queueSize int) *OperatorAudit {
	if queueSize <= 0 {
		queueSize = defaultAuditQueue
	}
	a := &OperatorAudit{
		repo:  repo,
		log:   log,
		queue: make(chan *domain.OperatorAction, queueSize),
		done:  make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *OperatorAudit) Log(_ context.Context, action *domain.OperatorAction) {
	a.log.Info().
		Str("kind", string(action.Kind)).
		Str("operator", action.Operator).
		Str("card_id", action.CardID).
		Str("request_id", action.RequestID).
		Str("client_ip", action.ClientIP).
		Msg("operator action")

	if a.repo == nil {
		return
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return
	}
	select {
	case a.queue <- action:
	default:
		a.log.Warn().Str("kind", string(action.Kind)).Msg("audit queue full, action not persisted")
	}
}

// Close stops accepting actions and waits for the queue to drain.
func (a *OperatorAudit) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()
	<-a.done
}

func (a *OperatorAudit) run() {
	defer close(a.done)
	for action := range a.queue {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		if err := a.repo.Create(ctx, action); err != nil {
			a.log.Warn().Err(err).Str("kind", string(action.Kind)).Msg("failed to persist operator action")
		}
		cancel()
	}
}
