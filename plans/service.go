// Package plans wraps the recurring billing plan endpoints. Pass-through
// only; plan lifecycle rules (which transitions are legal, how in-flight
// subscriptions are affected) are enforced by the gateway.
package plans

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const basePath = "/rbs/v1/plans"

// Backend is the subset of the HTTP client the service uses.
type Backend interface {
	Get(ctx context.Context, path string, result any) error
	Post(ctx context.Context, path string, body, result any) error
	Patch(ctx context.Context, path string, body, result any) error
	Delete(ctx context.Context, path string) error
}

// Service calls the billing plan endpoints.
type Service struct {
	api Backend
}

// New returns a plan service backed by the given client.
func New(api Backend) *Service {
	return &Service{api: api}
}

// Create defines a new billing plan.
func (s *Service) Create(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	var plan Plan
	if err := s.api.Post(ctx, basePath, req, &plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return &plan, nil
}

// Get retrieves a plan by id.
func (s *Service) Get(ctx context.Context, id string) (*Plan, error) {
	var plan Plan
	if err := s.api.Get(ctx, basePath+"/"+url.PathEscape(id), &plan); err != nil {
		return nil, fmt.Errorf("get plan %s: %w", id, err)
	}
	return &plan, nil
}

// List returns one page of plans. limit 0 uses the gateway default page size.
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
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return &page, nil
}

// Update patches a plan. Changes apply to future billing cycles.
func (s *Service) Update(ctx context.Context, id string, req UpdatePlanRequest) (*Plan, error) {
	var plan Plan
	if err := s.api.Patch(ctx, basePath+"/"+url.PathEscape(id), req, &plan); err != nil {
		return nil, fmt.Errorf("update plan %s: %w", id, err)
	}
	return &plan, nil
}

// Delete removes a plan. The gateway rejects deletion while active
// subscriptions reference it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, basePath+"/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	return nil
}

// Activate transitions a draft or inactive plan to ACTIVE.
func (s *Service) Activate(ctx context.Context, id string) (*Plan, error) {
	var plan Plan
	if err := s.api.Post(ctx, basePath+"/"+url.PathEscape(id)+"/activate", nil, &plan); err != nil {
		return nil, fmt.Errorf("activate plan %s: %w", id, err)
	}
	return &plan, nil
}

// Deactivate transitions an active plan to INACTIVE. Existing subscriptions
// keep billing; new subscriptions cannot reference the plan.
func (s *Service) Deactivate(ctx context.Context, id string) (*Plan, error) {
	var plan Plan
	if err := s.api.Post(ctx, basePath+"/"+url.PathEscape(id)+"/deactivate", nil, &plan); err != nil {
		return nil, fmt.Errorf("deactivate plan %s: %w", id, err)
	}
	return &plan, nil
}
