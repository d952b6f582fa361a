package request

type CreateTransactionRequest struct {
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Type         string  `json:"type"`
	Date         string  `json:"date"`
	Notes        string  `json:"notes,omitempty"`
}

type UpdateTransactionRequest struct {
	Name         *string  `json:"name,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	PricePerUnit *float64 `json:"pricePerUnit,omitempty"`
	Type         *string  `json:"type,omitempty"`
	Date         *string  `json:"date,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}
