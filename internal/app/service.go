// Package app implements the conversation manager: the intent handlers
// that turn inbound skill events into spoken responses, backed by the
// record store.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	repository "healthlog/internal/adapters/repository"
	aggregate "healthlog/internal/domain/metrics"
	"healthlog/internal/domain/model"
	"healthlog/internal/domain/record"
	"healthlog/pkg/logger"
	"healthlog/pkg/metrics"
)

// Service dispatches skill events to intent handlers. All conversation
// state is external: the record store is read and written on every
// request, and the only per-request flag is whether onboarding help
// phrasing applies.
type Service struct {
	store  repository.Store
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the record store backing the service.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Without options it runs against an in-memory
// store and the global logger.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore()
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// HandleEvent routes one inbound event to its handler and returns the
// response to speak. Unknown intent names are a skill misconfiguration and
// surface as ErrUnknownIntent rather than speech.
func (s *Service) HandleEvent(ctx context.Context, ev model.Event) (model.Response, error) {
	start := time.Now()

	resp, err := s.dispatch(ctx, ev)

	elapsed := float64(time.Since(start).Milliseconds())
	name := ev.Intent
	if name == "" {
		name = ev.Type
	}
	metrics.RecordIntentDuration(name, elapsed)
	if err != nil {
		metrics.RecordIntent(name, "error")
		s.logger.Error(ctx, "event failed",
			logger.String("requestID", ev.RequestID),
			logger.String("type", ev.Type),
			logger.String("intent", ev.Intent),
			logger.Error(err),
		)
		return model.Response{}, err
	}

	metrics.RecordIntent(name, "ok")
	s.logger.Info(ctx, "event handled",
		logger.String("requestID", ev.RequestID),
		logger.String("type", ev.Type),
		logger.String("intent", ev.Intent),
		logger.Bool("endSession", resp.EndSession),
	)
	return resp, nil
}

func (s *Service) dispatch(ctx context.Context, ev model.Event) (model.Response, error) {
	switch ev.Type {
	case model.TypeLaunch:
		return s.launch(ctx, ev)
	case model.TypeSessionEnded:
		// Nothing to tear down; state lives in the store.
		return model.Response{EndSession: true}, nil
	case model.TypeIntent:
	default:
		return model.Response{}, fmt.Errorf("%w: %q", ErrUnknownRequestType, ev.Type)
	}

	// A one-shot utterance opens its own session and must stay terse;
	// within a session opened by launch the fuller onboarding phrasing
	// applies.
	moreHelp := !ev.NewSession

	switch ev.Intent {
	case model.IntentAddUser:
		return s.addUser(ctx, ev, moreHelp)
	case model.IntentSetWeight:
		return s.setWeight(ctx, ev)
	case model.IntentSetHeight:
		return s.setHeight(ctx, ev)
	case model.IntentTellWeight:
		return s.tellWeight(ctx, ev)
	case model.IntentTellHeight:
		return s.tellHeight(ctx, ev)
	case model.IntentResetUsers:
		return s.resetUsers(ctx, ev)
	case model.IntentHelp:
		return s.help(moreHelp), nil
	case model.IntentCancel, model.IntentStop:
		return s.exit(moreHelp), nil
	default:
		metrics.RecordUnknownIntent()
		return model.Response{}, fmt.Errorf("%w: %q", ErrUnknownIntent, ev.Intent)
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"store": fmt.Sprintf("%T", s.store),
	}
}

// loadAggregate reads the record for identity. found is false when no
// record exists yet; any other failure is a hard error.
func (s *Service) loadAggregate(ctx context.Context, identity string) (*aggregate.Aggregate, bool, error) {
	start := time.Now()
	rec, err := s.store.Load(ctx, identity)
	metrics.RecordStorageOp("load", float64(time.Since(start).Milliseconds()))

	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, false, nil
		}
		metrics.RecordStorageError("load")
		return nil, false, fmt.Errorf("load health log: %w", err)
	}
	return aggregate.New(identity, rec), true, nil
}

// saveAggregate persists the aggregate's record. Failures propagate
// unretried.
func (s *Service) saveAggregate(ctx context.Context, agg *aggregate.Aggregate) error {
	start := time.Now()
	err := s.store.Save(ctx, agg.Identity(), agg.Record())
	metrics.RecordStorageOp("save", float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.RecordStorageError("save")
		return fmt.Errorf("save health log: %w", err)
	}
	return nil
}

// newAggregate starts a fresh record for identity.
func newAggregate(identity string) *aggregate.Aggregate {
	return aggregate.New(identity, record.New())
}
