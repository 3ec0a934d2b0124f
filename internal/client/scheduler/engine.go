package scheduler

import (
	"context"
	"net/http"
)

// EngineService reads the engine snapshot.
type EngineService interface {
	State(ctx context.Context) (*EngineState, error)
}

type engineService struct {
	client *Client
}

var _ EngineService = (*engineService)(nil)

func (s *engineService) State(ctx context.Context) (*EngineState, error) {
	var state EngineState
	if err := s.client.do(ctx, http.MethodGet, "/state", nil, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
