// Package customers wraps the Token Management Service customer endpoints.
// The service is a thin pass-through: it shapes requests, delegates to the
// signing HTTP client, and decodes responses. No state, no business logic.
package customers

import (
	"context"
	"fmt"
	"net/url"
)

const basePath = "/tms/v2/customers"

// Backend is the subset of the HTTP client the service uses.
type Backend interface {
	Get(ctx context.Context, path string, result any) error
	Post(ctx context.Context, path string, body, result any) error
	Patch(ctx context.Context, path string, body, result any) error
	Delete(ctx context.Context, path string) error
}

// Service calls the customer endpoints.
type Service struct {
	api Backend
}

// New returns a customer service backed by the given client.
func New(api Backend) *Service {
	return &Service{api: api}
}

// Create stores a new customer profile and returns it with its assigned token.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	var customer Customer
	if err := s.api.Post(ctx, basePath, req, &customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &customer, nil
}

// Get retrieves a customer profile by token.
func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	var customer Customer
	if err := s.api.Get(ctx, basePath+"/"+url.PathEscape(id), &customer); err != nil {
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}
	return &customer, nil
}

// Update patches a customer profile and returns the updated state.
func (s *Service) Update(ctx context.Context, id string, req UpdateCustomerRequest) (*Customer, error) {
	var customer Customer
	if err := s.api.Patch(ctx, basePath+"/"+url.PathEscape(id), req, &customer); err != nil {
		return nil, fmt.Errorf("update customer %s: %w", id, err)
	}
	return &customer, nil
}

// Delete removes a customer profile and all instruments stored under it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, basePath+"/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	return nil
}
