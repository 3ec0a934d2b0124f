package scheduler

import (
	"context"
	"net/http"
)

// RealtimeService controls and observes the compressed realtime runner.
type RealtimeService interface {
	// Start launches the compressed-day simulation. A backend that is
	// already running answers with StatusAlreadyRunning instead of failing.
	Start(ctx context.Context, req StartRequest) (*StartResponse, error)
	Stop(ctx context.Context) (*StopResponse, error)
	State(ctx context.Context) (*RealtimeState, error)
	Hourly(ctx context.Context) ([]HourlyReport, error)
}

type realtimeService struct {
	client *Client
}

var _ RealtimeService = (*realtimeService)(nil)

func (s *realtimeService) Start(ctx context.Context, req StartRequest) (*StartResponse, error) {
	var resp StartResponse
	if err := s.client.do(ctx, http.MethodPost, "/realtime/start", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *realtimeService) Stop(ctx context.Context) (*StopResponse, error) {
	var resp StopResponse
	if err := s.client.do(ctx, http.MethodPost, "/realtime/stop", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *realtimeService) State(ctx context.Context) (*RealtimeState, error) {
	var state RealtimeState
	if err := s.client.do(ctx, http.MethodGet, "/realtime/state", nil, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *realtimeService) Hourly(ctx context.Context) ([]HourlyReport, error) {
	var reports []HourlyReport
	if err := s.client.do(ctx, http.MethodGet, "/realtime/hourly", nil, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
