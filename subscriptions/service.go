// Package subscriptions wraps the recurring billing subscription endpoints.
// Pass-through only; the gateway owns the billing schedule and state machine.
package subscriptions

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const basePath = "/rbs/v1/subscriptions"

// Backend is the subset of the HTTP client the service uses.
type Backend interface {
	Get(ctx context.Context, path string, result any) error
	Post(ctx context.Context, path string, body, result any) error
	Patch(ctx context.Context, path string, body, result any) error
}

// Service calls the subscription endpoints.
type Service struct {
	api Backend
}

// New returns a subscription service backed by the given client.
func New(api Backend) *Service {
	return &Service{api: api}
}

// Create enrolls a stored customer in a billing plan.
func (s *Service) Create(ctx context.Context, req CreateSubscriptionRequest) (*Subscription, error) {
	var sub Subscription
	if err := s.api.Post(ctx, basePath, req, &sub); err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return &sub, nil
}

// Get retrieves a subscription by id.
func (s *Service) Get(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	if err := s.api.Get(ctx, basePath+"/"+url.PathEscape(id), &sub); err != nil {
		return nil, fmt.Errorf("get subscription %s: %w", id, err)
	}
	return &sub, nil
}

// List returns one page of subscriptions.
func (s *Service) List(ctx context.Context, offset, limit int) (*ListResponse, error) {
	path := basePath
	query := url.Values{}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page ListResponse
	if err := s.api.Get(ctx, path, &page); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return &page, nil
}

// Update patches a subscription. Amount changes apply from the next cycle.
func (s *Service) Update(ctx context.Context, id string, req UpdateSubscriptionRequest) (*Subscription, error) {
	var sub Subscription
	if err := s.api.Patch(ctx, basePath+"/"+url.PathEscape(id), req, &sub); err != nil {
		return nil, fmt.Errorf("update subscription %s: %w", id, err)
	}
	return &sub, nil
}

// Cancel permanently stops billing. Cancelled subscriptions cannot be
// reactivated.
func (s *Service) Cancel(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	if err := s.api.Post(ctx, basePath+"/"+url.PathEscape(id)+"/cancel", nil, &sub); err != nil {
		return nil, fmt.Errorf("cancel subscription %s: %w", id, err)
	}
	return &sub, nil
}

// Suspend pauses billing until Activate is called.
func (s *Service) Suspend(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	if err := s.api.Post(ctx, basePath+"/"+url.PathEscape(id)+"/suspend", nil, &sub); err != nil {
		return nil, fmt.Errorf("suspend subscription %s: %w", id, err)
	}
	return &sub, nil
}

// Activate resumes billing on a suspended subscription.
func (s *Service) Activate(ctx context.Context, id string) (*Subscription, error) {
	var sub Subscription
	if err := s.api.Post(ctx, basePath+"/"+url.PathEscape(id)+"/activate", nil, &sub); err != nil {
		return nil, fmt.Errorf("activate subscription %s: %w", id, err)
	}
	return &sub, nil
}
