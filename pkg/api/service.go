// CLAUDE:SUMMARY Service: the corrector plus its optional back-ends (result cache, history journal); back-end failures are logged and never fail a correction.
package api

import (
	"context"
	"log/slog"

	"github.com/hazyhaar/corrector-es/pkg/cache"
	"github.com/hazyhaar/corrector-es/pkg/corrector"
	"github.com/hazyhaar/corrector-es/pkg/history"
	"github.com/hazyhaar/corrector-es/pkg/kit"
)

// Service is shared by the HTTP and MCP transports.
type Service struct {
	corr    *corrector.Corrector
	cache   cache.Cache
	history *history.DB
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithCache serves repeated texts from c.
func WithCache(c cache.Cache) ServiceOption {
	return func(s *Service) { s.cache = c }
}

// WithHistory journals every correction into h.
func WithHistory(h *history.DB) ServiceOption {
	return func(s *Service) { s.history = h }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService wraps corr with the given back-ends.
func NewService(corr *corrector.Corrector, opts ...ServiceOption) *Service {
	s := &Service{corr: corr, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Outcome is a correction result plus where it came from.
type Outcome struct {
	corrector.Result
	RunID  string `json:"run_id,omitempty"`
	Cached bool   `json:"cached"`
}

// Correct returns the correction of text, from the cache when possible.
func (s *Service) Correct(ctx context.Context, text string) Outcome {
	var out Outcome
	key := cache.Key(s.corr.Lexicon().Fingerprint(), text)

	if s.cache != nil {
		res, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("cache get failed", "request_id", kit.GetRequestID(ctx), "error", err)
		}
		if ok {
			out.Result, out.Cached = res, true
		}
	}
	if !out.Cached {
		out.Result = s.corr.CorrectText(text)
		if s.cache != nil {
			if err := s.cache.Set(ctx, key, out.Result); err != nil {
				s.logger.Warn("cache set failed", "request_id", kit.GetRequestID(ctx), "error", err)
			}
		}
	}

	if s.history != nil {
		id, err := s.history.Record(ctx, kit.GetSource(ctx), out.Result)
		if err != nil {
			s.logger.Warn("history record failed", "request_id", kit.GetRequestID(ctx), "error", err)
		}
		out.RunID = id
	}
	return out
}

// Corrector returns the underlying corrector.
func (s *Service) Corrector() *corrector.Corrector {
	return s.corr
}
