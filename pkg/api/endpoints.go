package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hazyhaar/corrector-es/pkg/kit"
	"github.com/hazyhaar/corrector-es/pkg/lexicon"
)

// MaxBatch is the largest number of texts one batch call accepts.
const MaxBatch = 50

// Shared request/response types used by both HTTP and MCP transports.

type correctReq struct {
	Text string
}

type correctBatchReq struct {
	Texts []string
}

type batchResponse struct {
	Results []Outcome `json:"results"`
}

type lexiconResponse struct {
	Lexicon lexicon.Info `json:"lexicon"`
	Stages  []string     `json:"stages"`
	Cutoff  float64      `json:"cutoff"`
}

// Endpoints groups the core kit.Endpoints backed by the service.
type Endpoints struct {
	Correct      kit.Endpoint
	CorrectBatch kit.Endpoint
	Lexicon      kit.Endpoint
}

// MakeEndpoints builds the endpoints, each wrapped with logging and panic
// recovery.
func MakeEndpoints(svc *Service, logger *slog.Logger) Endpoints {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	wrap := func(name string, ep kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.Logging(logger, name), kit.Recover())(ep)
	}
	return Endpoints{
		Correct:      wrap("correct", correctEndpoint(svc)),
		CorrectBatch: wrap("correct_batch", correctBatchEndpoint(svc)),
		Lexicon:      wrap("lexicon", lexiconEndpoint(svc)),
	}
}

func correctEndpoint(svc *Service) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*correctReq)
		return svc.Correct(ctx, req.Text), nil
	}
}

func correctBatchEndpoint(svc *Service) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*correctBatchReq)
		if len(req.Texts) == 0 {
			return nil, fmt.Errorf("texts array is empty")
		}
		if len(req.Texts) > MaxBatch {
			return nil, fmt.Errorf("too many texts (max %d, got %d)", MaxBatch, len(req.Texts))
		}
		results := make([]Outcome, len(req.Texts))
		for i, text := range req.Texts {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = svc.Correct(ctx, text)
		}
		return batchResponse{Results: results}, nil
	}
}

func lexiconEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		c := svc.Corrector()
		return lexiconResponse{
			Lexicon: c.Lexicon().Info(),
			Stages:  c.Stages(),
			Cutoff:  c.Cutoff(),
		}, nil
	}
}
