package tokens

import cybersource "github.com/paymentlabs/cybersource-go"

// InstrumentIdentifier is the tokenized representation of a PAN or bank
// account number. The same card number always maps to the same identifier,
// across merchants sharing a token vault.
type InstrumentIdentifier struct {
	// ID is the gateway-assigned identifier token.
	ID string `json:"id,omitempty"`

	// State is ACTIVE or CLOSED.
	State string `json:"state,omitempty"`

	Card        *IdentifierCard        `json:"card,omitempty"`
	BankAccount *IdentifierBankAccount `json:"bankAccount,omitempty"`

	Links map[string]cybersource.Link `json:"_links,omitempty"`
}

// IdentifierCard carries the PAN being tokenized. Only the number is part of
// the identity; expiry lives on the payment instrument.
type IdentifierCard struct {
	Number string `json:"number,omitempty"`
}

// IdentifierBankAccount carries the account/routing pair being tokenized.
type IdentifierBankAccount struct {
	Number        string `json:"number,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
}

// CreateInstrumentIdentifierRequest is the body for tokenizing a card or
// bank account number.
type CreateInstrumentIdentifierRequest struct {
	Card        *IdentifierCard        `json:"card,omitempty"`
	BankAccount *IdentifierBankAccount `json:"bankAccount,omitempty"`
}

// PaymentInstrument combines an instrument identifier with expiry, billing
// address, and cardholder details to form a chargeable token.
type PaymentInstrument struct {
	// ID is the gateway-assigned payment instrument token.
	ID string `json:"id,omitempty"`

	// State is ACTIVE or CLOSED.
	State string `json:"state,omitempty"`

	Card                 *InstrumentCard       `json:"card,omitempty"`
	BillTo               *BillTo               `json:"billTo,omitempty"`
	InstrumentIdentifier *InstrumentIdentifier `json:"instrumentIdentifier,omitempty"`

	Links map[string]cybersource.Link `json:"_links,omitempty"`
}

// InstrumentCard carries the non-identifying card details.
type InstrumentCard struct {
	ExpirationMonth string `json:"expirationMonth,omitempty"`
	ExpirationYear  string `json:"expirationYear,omitempty"`

	// Type is the card network code (e.g. "001" Visa, "002" Mastercard).
	Type string `json:"type,omitempty"`
}

// BillTo is the billing address attached to a payment instrument.
type BillTo struct {
	FirstName          string `json:"firstName,omitempty"`
	LastName           string `json:"lastName,omitempty"`
	Address1           string `json:"address1,omitempty"`
	Locality           string `json:"locality,omitempty"`
	AdministrativeArea string `json:"administrativeArea,omitempty"`
	PostalCode         string `json:"postalCode,omitempty"`
	Country            string `json:"country,omitempty"`
	Email              string `json:"email,omitempty"`
}

// CreatePaymentInstrumentRequest is the body for creating a payment
// instrument over an existing instrument identifier.
type CreatePaymentInstrumentRequest struct {
	Card                 *InstrumentCard       `json:"card,omitempty"`
	BillTo               *BillTo               `json:"billTo,omitempty"`
	InstrumentIdentifier *InstrumentIdentifier `json:"instrumentIdentifier,omitempty"`
}
