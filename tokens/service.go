// Package tokens wraps the Token Management Service tokenization endpoints:
// instrument identifiers (tokenized account numbers) and payment instruments
// (chargeable tokens). Pass-through only; the gateway owns all tokenization
// semantics.
package tokens

import (
	"context"
	"fmt"
	"net/url"
)

const (
	identifierPath = "/tms/v1/instrumentidentifiers"
	instrumentPath = "/tms/v1/paymentinstruments"
)

// Backend is the subset of the HTTP client the service uses.
type Backend interface {
	Get(ctx context.Context, path string, result any) error
	Post(ctx context.Context, path string, body, result any) error
	Delete(ctx context.Context, path string) error
}

// Service calls the tokenization endpoints.
type Service struct {
	api Backend
}

// New returns a tokenization service backed by the given client.
func New(api Backend) *Service {
	return &Service{api: api}
}

// CreateInstrumentIdentifier tokenizes a card or bank account number.
// Creating the same number twice returns the existing identifier.
func (s *Service) CreateInstrumentIdentifier(ctx context.Context, req CreateInstrumentIdentifierRequest) (*InstrumentIdentifier, error) {
	var identifier InstrumentIdentifier
	if err := s.api.Post(ctx, identifierPath, req, &identifier); err != nil {
		return nil, fmt.Errorf("create instrument identifier: %w", err)
	}
	return &identifier, nil
}

// GetInstrumentIdentifier retrieves an instrument identifier by token.
func (s *Service) GetInstrumentIdentifier(ctx context.Context, id string) (*InstrumentIdentifier, error) {
	var identifier InstrumentIdentifier
	if err := s.api.Get(ctx, identifierPath+"/"+url.PathEscape(id), &identifier); err != nil {
		return nil, fmt.Errorf("get instrument identifier %s: %w", id, err)
	}
	return &identifier, nil
}

// DeleteInstrumentIdentifier removes an instrument identifier. The gateway
// rejects the delete while payment instruments still reference it.
func (s *Service) DeleteInstrumentIdentifier(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, identifierPath+"/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete instrument identifier %s: %w", id, err)
	}
	return nil
}

// CreatePaymentInstrument creates a chargeable token over an existing
// instrument identifier.
func (s *Service) CreatePaymentInstrument(ctx context.Context, req CreatePaymentInstrumentRequest) (*PaymentInstrument, error) {
	var instrument PaymentInstrument
	if err := s.api.Post(ctx, instrumentPath, req, &instrument); err != nil {
		return nil, fmt.Errorf("create payment instrument: %w", err)
	}
	return &instrument, nil
}

// GetPaymentInstrument retrieves a payment instrument by token.
func (s *Service) GetPaymentInstrument(ctx context.Context, id string) (*PaymentInstrument, error) {
	var instrument PaymentInstrument
	if err := s.api.Get(ctx, instrumentPath+"/"+url.PathEscape(id), &instrument); err != nil {
		return nil, fmt.Errorf("get payment instrument %s: %w", id, err)
	}
	return &instrument, nil
}

// DeletePaymentInstrument removes a payment instrument token.
func (s *Service) DeletePaymentInstrument(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, instrumentPath+"/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete payment instrument %s: %w", id, err)
	}
	return nil
}
