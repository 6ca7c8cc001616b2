package command

type CreateInvoiceCommand struct {
	Title             string  `json:"title"`
	InvoiceNumber     string  `json:"invoice_number"`
	WholesalerDetails string  `json:"wholesaler_details"`
	BuyerDetails      string  `json:"buyer_details"`
	Items             string  `json:"items"`
	TotalValue        float64 `json:"total_value"`
	Company           string  `json:"company"`
	Email             string  `json:"email"`
}

// UpdateInvoiceCommand is a partial payload: nil fields keep their stored
// value.
type UpdateInvoiceCommand struct {
	Title             *string  `json:"title"`
	InvoiceNumber     *string  `json:"invoice_number"`
	WholesalerDetails *string  `json:"wholesaler_details"`
	BuyerDetails      *string  `json:"buyer_details"`
	Items             *string  `json:"items"`
	TotalValue        *float64 `json:"total_value"`
	Company           *string  `json:"company"`
}
