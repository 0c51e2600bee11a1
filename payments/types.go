package payments

import cybersource "github.com/paymentlabs/cybersource-go"

// PaymentRequest is the body for authorizing (and optionally capturing) a
// payment.
type PaymentRequest struct {
	ClientReferenceInformation *cybersource.ClientReferenceInformation `json:"clientReferenceInformation,omitempty"`
	ProcessingInformation      *ProcessingInformation                  `json:"processingInformation,omitempty"`
	PaymentInformation         *PaymentInformation                     `json:"paymentInformation,omitempty"`
	OrderInformation           *OrderInformation                       `json:"orderInformation,omitempty"`
}

// ProcessingInformation controls how the gateway processes the transaction.
type ProcessingInformation struct {
	// Capture requests auth+capture in a single call. False authorizes only.
	Capture bool `json:"capture,omitempty"`

	CommerceIndicator string `json:"commerceIndicator,omitempty"`
}

// PaymentInformation identifies the instrument to charge, either raw card
// data or a stored customer token.
type PaymentInformation struct {
	Card     *Card              `json:"card,omitempty"`
	Customer *CustomerReference `json:"customer,omitempty"`
}

// Card is raw card data. Prefer stored customer tokens where possible.
type Card struct {
	Number          string `json:"number,omitempty"`
	ExpirationMonth string `json:"expirationMonth,omitempty"`
	ExpirationYear  string `json:"expirationYear,omitempty"`
	SecurityCode    string `json:"securityCode,omitempty"`
	Type            string `json:"type,omitempty"`
}

// CustomerReference charges a stored customer's default payment instrument.
type CustomerReference struct {
	ID string `json:"id,omitempty"`
}

// OrderInformation carries the amount and buyer details.
type OrderInformation struct {
	AmountDetails *AmountDetails `json:"amountDetails,omitempty"`
	BillTo        *BillTo        `json:"billTo,omitempty"`
}

// AmountDetails is the transaction amount. Amounts are decimal strings to
// avoid float rounding on the wire.
type AmountDetails struct {
	TotalAmount string `json:"totalAmount,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// BillTo is the buyer's billing address.
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

// CaptureRequest is the body for capturing a prior authorization. A nil
// amount captures the full authorized amount.
type CaptureRequest struct {
	ClientReferenceInformation *cybersource.ClientReferenceInformation `json:"clientReferenceInformation,omitempty"`
	OrderInformation           *OrderInformation                       `json:"orderInformation,omitempty"`
}

// RefundRequest is the body for refunding a captured payment.
type RefundRequest struct {
	ClientReferenceInformation *cybersource.ClientReferenceInformation `json:"clientReferenceInformation,omitempty"`
	OrderInformation           *OrderInformation                       `json:"orderInformation,omitempty"`
}

// VoidRequest is the body for voiding a transaction that has not settled.
type VoidRequest struct {
	ClientReferenceInformation *cybersource.ClientReferenceInformation `json:"clientReferenceInformation,omitempty"`
}

// PaymentResponse is the gateway's view of a processed transaction.
type PaymentResponse struct {
	// ID is the transaction identifier, used for follow-on captures,
	// refunds, and voids.
	ID string `json:"id,omitempty"`

	// Status is AUTHORIZED, PENDING, DECLINED, REVERSED, or similar.
	Status string `json:"status,omitempty"`

	SubmitTimeUTC string `json:"submitTimeUtc,omitempty"`

	ClientReferenceInformation *cybersource.ClientReferenceInformation `json:"clientReferenceInformation,omitempty"`
	ProcessorInformation       *ProcessorInformation                   `json:"processorInformation,omitempty"`
	OrderInformation           *OrderInformation                       `json:"orderInformation,omitempty"`
	ErrorInformation           *cybersource.ErrorResponse              `json:"errorInformation,omitempty"`

	Links map[string]cybersource.Link `json:"_links,omitempty"`
}

// ProcessorInformation echoes the acquiring processor's response.
type ProcessorInformation struct {
	ApprovalCode    string `json:"approvalCode,omitempty"`
	ResponseCode    string `json:"responseCode,omitempty"`
	TransactionID   string `json:"transactionId,omitempty"`
	AVSResultCode   string `json:"avs,omitempty"`
	NetworkResponse string `json:"networkTransactionId,omitempty"`
}
