package cybersource

// ClientReferenceInformation carries merchant-assigned identifiers echoed
// back by the gateway on every resource it creates.
type ClientReferenceInformation struct {
	// Code is the merchant-generated order or request reference.
	Code string `json:"code,omitempty"`

	// Partner identifies an integrating partner, when applicable.
	Partner *PartnerInformation `json:"partner,omitempty"`
}

// PartnerInformation identifies a technology partner on a request.
type PartnerInformation struct {
	// DeveloperID is the partner's developer identifier.
	DeveloperID string `json:"developerId,omitempty"`

	// SolutionID is the partner's solution identifier.
	SolutionID string `json:"solutionId,omitempty"`
}

// Link is a HATEOAS link returned in _links blocks.
type Link struct {
	Href   string `json:"href,omitempty"`
	Method string `json:"method,omitempty"`
}

// ErrorResponse is the JSON body the gateway returns on non-2xx responses.
type ErrorResponse struct {
	// Reason is the machine-readable reason code (e.g. "INVALID_DATA").
	Reason string `json:"reason,omitempty"`

	// Message is the human-readable description.
	Message string `json:"message,omitempty"`

	// Details enumerates per-field validation failures, if any.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes a single invalid field in a rejected request.
type FieldError struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}
