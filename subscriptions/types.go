package subscriptions

import cybersource "github.com/paymentlabs/cybersource-go"

// Subscription enrolls a stored customer in a billing plan.
type Subscription struct {
	// ID is the gateway-assigned subscription identifier.
	ID string `json:"id,omitempty"`

	ClientReferenceInformation *cybersource.ClientReferenceInformation `json:"clientReferenceInformation,omitempty"`
	PlanInformation            *PlanInformation                        `json:"planInformation,omitempty"`
	SubscriptionInformation    *SubscriptionInformation                `json:"subscriptionInformation,omitempty"`
	PaymentInformation         *PaymentInformation                     `json:"paymentInformation,omitempty"`
	OrderInformation           *OrderInformation                       `json:"orderInformation,omitempty"`

	Links map[string]cybersource.Link `json:"_links,omitempty"`
}

// PlanInformation references the billing plan and tracks cycle progress.
type PlanInformation struct {
	// Code is the plan identifier the subscription bills against.
	Code string `json:"code,omitempty"`

	BillingPeriod *BillingPeriod `json:"billingPeriod,omitempty"`
	BillingCycles *BillingCycles `json:"billingCycles,omitempty"`
}

// BillingPeriod mirrors the plan's charge interval.
type BillingPeriod struct {
	Length string `json:"length,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// BillingCycles tracks total and completed charge cycles.
type BillingCycles struct {
	Total   string `json:"total,omitempty"`
	Current string `json:"current,omitempty"`
}

// SubscriptionInformation carries the enrollment details.
type SubscriptionInformation struct {
	// Code is the merchant's own subscription reference.
	Code string `json:"code,omitempty"`

	Name string `json:"name,omitempty"`

	// PlanID is the plan to bill against, set on creation.
	PlanID string `json:"planId,omitempty"`

	// StartDate is when billing begins, ISO 8601.
	StartDate string `json:"startDate,omitempty"`

	// Status is PENDING, ACTIVE, SUSPENDED, or CANCELLED.
	Status string `json:"status,omitempty"`
}

// PaymentInformation names the stored customer charged each cycle.
type PaymentInformation struct {
	Customer *CustomerReference `json:"customer,omitempty"`
}

// CustomerReference points at a stored customer token.
type CustomerReference struct {
	ID string `json:"id,omitempty"`
}

// OrderInformation overrides the plan amount for this subscription.
type OrderInformation struct {
	AmountDetails *AmountDetails `json:"amountDetails,omitempty"`
}

// AmountDetails is the per-cycle amount override.
type AmountDetails struct {
	BillingAmount string `json:"billingAmount,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

// CreateSubscriptionRequest is the body for enrolling a customer in a plan.
type CreateSubscriptionRequest struct {
	ClientReferenceInformation *cybersource.ClientReferenceInformation `json:"clientReferenceInformation,omitempty"`
	SubscriptionInformation    *SubscriptionInformation                `json:"subscriptionInformation,omitempty"`
	PaymentInformation         *PaymentInformation                     `json:"paymentInformation,omitempty"`
	OrderInformation           *OrderInformation                       `json:"orderInformation,omitempty"`
}

// UpdateSubscriptionRequest is the body for patching a subscription.
type UpdateSubscriptionRequest struct {
	SubscriptionInformation *SubscriptionInformation `json:"subscriptionInformation,omitempty"`
	OrderInformation        *OrderInformation        `json:"orderInformation,omitempty"`
}

// ListResponse is one page of subscriptions.
type ListResponse struct {
	Subscriptions []Subscription              `json:"subscriptions,omitempty"`
	TotalCount    int                         `json:"totalCount,omitempty"`
	Links         map[string]cybersource.Link `json:"_links,omitempty"`
}
