package scheduler

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// PlanService reads the projected schedule and asks the backend to reorder
// its queue.
type PlanService interface {
	Preview(ctx context.Context, limit int) ([]PlanItem, error)
	Recompute(ctx context.Context, strategy string) (*RecomputeResult, error)
	// ExportCSV fetches the plan as raw CSV text; the response is not
	// decoded beyond reading the body.
	ExportCSV(ctx context.Context, limit int) (string, error)
	// ExportURL builds the export link for handing to a browser or file
	// download outside this client.
	ExportURL(limit int) string
}

type planService struct {
	client *Client
}

var _ PlanService = (*planService)(nil)

func (s *planService) Preview(ctx context.Context, limit int) ([]PlanItem, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var items []PlanItem
	if err := s.client.do(ctx, http.MethodGet, "/plan", query, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *planService) Recompute(ctx context.Context, strategy string) (*RecomputeResult, error) {
	query := url.Values{}
	if strategy != "" {
		query.Set("strategy", strategy)
	}

	var result RecomputeResult
	if err := s.client.do(ctx, http.MethodPost, "/plan/recompute", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *planService) ExportCSV(ctx context.Context, limit int) (string, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var csv string
	if err := s.client.do(ctx, http.MethodGet, "/plan/export.csv", query, nil, &csv); err != nil {
		return "", err
	}
	return csv, nil
}

func (s *planService) ExportURL(limit int) string {
	u := s.client.baseURL + "/plan/export.csv"
	if limit > 0 {
		u += "?limit=" + strconv.Itoa(limit)
	}
	return u
}
