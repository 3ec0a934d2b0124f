package scheduler

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// WorkOrderService lists and creates work orders in the engine queue.
type WorkOrderService interface {
	List(ctx context.Context, limit int) ([]WorkOrder, error)
	Create(ctx context.Context, req CreateWorkOrderRequest) (*WorkOrder, error)
}

type workOrderService struct {
	client *Client
}

var _ WorkOrderService = (*workOrderService)(nil)

func (s *workOrderService) List(ctx context.Context, limit int) ([]WorkOrder, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var orders []WorkOrder
	if err := s.client.do(ctx, http.MethodGet, "/work-orders", query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *workOrderService) Create(ctx context.Context, req CreateWorkOrderRequest) (*WorkOrder, error) {
	var order WorkOrder
	if err := s.client.do(ctx, http.MethodPost, "/work-orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
