package orders

// ListOrdersRequest scopes a query to one company with optional exact-match
// filters. CompanyID is mandatory; the service rejects zero values before
// touching the store.
type ListOrdersRequest struct {
	CompanyID int64
	Origin    *Origin
	Status    *Status
}

// RegisterOrderInput is the POST /orders body. Identity fields are never
// read from the body; they come from the authenticated context.
type RegisterOrderInput struct {
	Origin      Origin       `json:"origem" validate:"required,oneof=QUICK LEAD OFFLINE"`
	LeadCode    *int64       `json:"codLead" validate:"omitempty,gt=0"`
	Payload     *Payload     `json:"corpoJson" validate:"required"`
	Status      Status       `json:"status" validate:"required,oneof=SUCCESS ERROR"`
	ERPOrderRef *int64       `json:"nunota" validate:"omitempty,gt=0"`
	Error       *ErrorDetail `json:"erro"`
	Attempts    int          `json:"tentativas" validate:"omitempty,gte=1"`
}

// RegisterOrderRequest is the full ingestion request after the caller has
// been resolved.
type RegisterOrderRequest struct {
	RegisterOrderInput
	CompanyID int64  `validate:"required,gt=0"`
	UserID    int64  `validate:"required,gt=0"`
	UserName  string `validate:"required"`
}

// RegisterOrderResponse acknowledges a recorded attempt.
type RegisterOrderResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}
