package customers

import cybersource "github.com/paymentlabs/cybersource-go"

// Customer is a stored customer profile in the Token Management Service.
type Customer struct {
	// ID is the gateway-assigned customer token.
	ID string `json:"id,omitempty"`

	ClientReferenceInformation *cybersource.ClientReferenceInformation `json:"clientReferenceInformation,omitempty"`
	BuyerInformation           *BuyerInformation                       `json:"buyerInformation,omitempty"`
	ObjectInformation          *ObjectInformation                      `json:"objectInformation,omitempty"`

	// DefaultPaymentInstrument references the instrument charged when a
	// request names only the customer.
	DefaultPaymentInstrument *InstrumentReference `json:"defaultPaymentInstrument,omitempty"`

	// MerchantDefinedInformation holds up to four free-form name/value pairs.
	MerchantDefinedInformation []MerchantDefinedField `json:"merchantDefinedInformation,omitempty"`

	Links map[string]cybersource.Link `json:"_links,omitempty"`
}

// BuyerInformation identifies the customer to the merchant.
type BuyerInformation struct {
	// MerchantCustomerID is the merchant's own identifier for the customer.
	MerchantCustomerID string `json:"merchantCustomerID,omitempty"`

	Email string `json:"email,omitempty"`
}

// ObjectInformation carries display metadata for the stored profile.
type ObjectInformation struct {
	Title   string `json:"title,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// InstrumentReference points at a stored payment instrument by token.
type InstrumentReference struct {
	ID string `json:"id,omitempty"`
}

// MerchantDefinedField is one merchant-defined name/value pair.
type MerchantDefinedField struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// CreateCustomerRequest is the body for creating a customer profile.
type CreateCustomerRequest struct {
	ClientReferenceInformation *cybersource.ClientReferenceInformation `json:"clientReferenceInformation,omitempty"`
	BuyerInformation           *BuyerInformation                       `json:"buyerInformation,omitempty"`
	ObjectInformation          *ObjectInformation                      `json:"objectInformation,omitempty"`
	MerchantDefinedInformation []MerchantDefinedField                  `json:"merchantDefinedInformation,omitempty"`
}

// UpdateCustomerRequest is the body for patching a customer profile. Only
// the supplied fields change.
type UpdateCustomerRequest struct {
	BuyerInformation         *BuyerInformation    `json:"buyerInformation,omitempty"`
	ObjectInformation        *ObjectInformation   `json:"objectInformation,omitempty"`
	DefaultPaymentInstrument *InstrumentReference `json:"defaultPaymentInstrument,omitempty"`
}
