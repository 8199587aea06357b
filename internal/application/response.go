package application

import "ordercli/internal/domain"

//go:generate mockgen -source ../domain/repo.go -destination repo_mock_test.go -package application

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Response is a use case outcome ready to be printed as one JSON object.
// Use cases never let validation failures escape as errors; they come back
// as an ErrorResponse instead.
type Response interface {
	response()
}

type OrderResponse struct {
	Status string             `json:"status"`
	Order  domain.OrderRecord `json:"order"`
}

type ListResponse struct {
	Status string                `json:"status"`
	Orders []domain.OrderSummary `json:"orders"`
	Count  int                   `json:"count"`
}

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (OrderResponse) response() {}
func (ListResponse) response()  {}
func (ErrorResponse) response() {}

func errorResponse(msg string) ErrorResponse {
	return ErrorResponse{Status: statusError, Error: msg}
}
