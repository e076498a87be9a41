package dto

// AddFundsRequest is the body of a JSON add-funds call. The amount is a
// decimal string such as "25.50".
type AddFundsRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// AddFundsResponse carries the wallet balance after the credit
type AddFundsResponse struct {
	Balance          string `json:"balance"`
	FormattedBalance string `json:"formattedBalance"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Sessions int    `json:"sessions"`
}
