package command

type CreateMemoCommand struct {
	Title             string  `json:"title"`
	MemoNumber        string  `json:"memo_number"`
	ExpiryDate        string  `json:"expiry_date"`
	WholesalerDetails string  `json:"wholesaler_details"`
	BuyerDetails      string  `json:"buyer_details"`
	Items             string  `json:"items"`
	TotalValue        float64 `json:"total_value"`
	Remarks           string  `json:"remarks"`
	Company           string  `json:"company"`
	// Email, when present, names the recipient of the best-effort
	// creation notification.
	Email string `json:"email"`
}

// UpdateMemoCommand is a partial payload: nil fields keep their stored value.
type UpdateMemoCommand struct {
	Title             *string  `json:"title"`
	MemoNumber        *string  `json:"memo_number"`
	ExpiryDate        *string  `json:"expiry_date"`
	WholesalerDetails *string  `json:"wholesaler_details"`
	BuyerDetails      *string  `json:"buyer_details"`
	Items             *string  `json:"items"`
	TotalValue        *float64 `json:"total_value"`
	Remarks           *string  `json:"remarks"`
	Company           *string  `json:"company"`
}
