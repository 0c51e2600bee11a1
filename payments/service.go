// Package payments wraps the payment processing endpoints: authorization,
// capture, refund, and void. Each follow-on operation takes the transaction
// id returned by the prior step.
package payments

import (
	"context"
	"fmt"
	"net/url"
)

const basePath = "/pts/v2/payments"

// Backend is the subset of the HTTP client the service uses.
type Backend interface {
	Post(ctx context.Context, path string, body, result any) error
}

// Service calls the payment processing endpoints.
type Service struct {
	api Backend
}

// New returns a payment service backed by the given client.
func New(api Backend) *Service {
	return &Service{api: api}
}

// Create authorizes a payment. Set ProcessingInformation.Capture to also
// capture in the same call.
func (s *Service) Create(ctx context.Context, req PaymentRequest) (*PaymentResponse, error) {
	var resp PaymentResponse
	if err := s.api.Post(ctx, basePath, req, &resp); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return &resp, nil
}

// Capture settles a prior authorization.
func (s *Service) Capture(ctx context.Context, id string, req CaptureRequest) (*PaymentResponse, error) {
	var resp PaymentResponse
	if err := s.api.Post(ctx, basePath+"/"+url.PathEscape(id)+"/captures", req, &resp); err != nil {
		return nil, fmt.Errorf("capture payment %s: %w", id, err)
	}
	return &resp, nil
}

// Refund returns captured funds to the buyer. Partial refunds pass an
// amount; a zero-value request refunds the full capture.
func (s *Service) Refund(ctx context.Context, id string, req RefundRequest) (*PaymentResponse, error) {
	var resp PaymentResponse
	if err := s.api.Post(ctx, basePath+"/"+url.PathEscape(id)+"/refunds", req, &resp); err != nil {
		return nil, fmt.Errorf("refund payment %s: %w", id, err)
	}
	return &resp, nil
}

// Void cancels a transaction that has not yet settled.
func (s *Service) Void(ctx context.Context, id string, req VoidRequest) (*PaymentResponse, error) {
	var resp PaymentResponse
	if err := s.api.Post(ctx, basePath+"/"+url.PathEscape(id)+"/voids", req, &resp); err != nil {
		return nil, fmt.Errorf("void payment %s: %w", id, err)
	}
	return &resp, nil
}
