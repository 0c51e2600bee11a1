package plans

import cybersource "github.com/paymentlabs/cybersource-go"

// Plan is a recurring billing plan definition.
type Plan struct {
	// ID is the gateway-assigned plan identifier.
	ID string `json:"id,omitempty"`

	PlanInformation  *PlanInformation  `json:"planInformation,omitempty"`
	OrderInformation *OrderInformation `json:"orderInformation,omitempty"`

	// Status is DRAFT, ACTIVE, or INACTIVE.
	Status string `json:"status,omitempty"`

	Links map[string]cybersource.Link `json:"_links,omitempty"`
}

// PlanInformation describes the billing schedule.
type PlanInformation struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	BillingPeriod *BillingPeriod `json:"billingPeriod,omitempty"`
	BillingCycles *BillingCycles `json:"billingCycles,omitempty"`
}

// BillingPeriod is the interval between charges.
type BillingPeriod struct {
	// Length is the number of units per period.
	Length string `json:"length,omitempty"`

	// Unit is D (day), W (week), M (month), or Y (year).
	Unit string `json:"unit,omitempty"`
}

// BillingCycles bounds the number of charges. Absent means open-ended.
type BillingCycles struct {
	Total string `json:"total,omitempty"`
}

// OrderInformation carries the amount charged per cycle.
type OrderInformation struct {
	AmountDetails *AmountDetails `json:"amountDetails,omitempty"`
}

// AmountDetails is the per-cycle billing amount.
type AmountDetails struct {
	BillingAmount string `json:"billingAmount,omitempty"`
	SetupFee      string `json:"setupFee,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

// CreatePlanRequest is the body for creating a billing plan.
type CreatePlanRequest struct {
	PlanInformation  *PlanInformation  `json:"planInformation,omitempty"`
	OrderInformation *OrderInformation `json:"orderInformation,omitempty"`
}

// UpdatePlanRequest is the body for patching a billing plan. Changes apply
// to future billing cycles only.
type UpdatePlanRequest struct {
	PlanInformation  *PlanInformation  `json:"planInformation,omitempty"`
	OrderInformation *OrderInformation `json:"orderInformation,omitempty"`
}

// ListResponse is one page of plans.
type ListResponse struct {
	Plans      []Plan                      `json:"plans,omitempty"`
	TotalCount int                         `json:"totalCount,omitempty"`
	Links      map[string]cybersource.Link `json:"_links,omitempty"`
}
