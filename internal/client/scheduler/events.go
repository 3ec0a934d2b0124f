package scheduler

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// EventsService injects operational events and reads the event log.
type EventsService interface {
	// Send submits an event carrying its own simulated timestamp.
	Send(ctx context.Context, ev ScheduledEvent) (*EventResponse, error)
	// SendNow submits an event stamped with the engine's current time.
	SendNow(ctx context.Context, ev ImmediateEvent) (*EventResponse, error)
	Log(ctx context.Context, limit int) ([]EventResponse, error)
}

type eventsService struct {
	client *Client
}

var _ EventsService = (*eventsService)(nil)

func (s *eventsService) Send(ctx context.Context, ev ScheduledEvent) (*EventResponse, error) {
	var resp EventResponse
	if err := s.client.do(ctx, http.MethodPost, "/events", nil, ev, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *eventsService) SendNow(ctx context.Context, ev ImmediateEvent) (*EventResponse, error) {
	var resp EventResponse
	if err := s.client.do(ctx, http.MethodPost, "/events/now", nil, ev, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *eventsService) Log(ctx context.Context, limit int) ([]EventResponse, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var entries []EventResponse
	if err := s.client.do(ctx, http.MethodGet, "/events/log", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
