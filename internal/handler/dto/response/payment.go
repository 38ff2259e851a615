package response

import (
	"arbitat/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	Reference uuid.UUID           `json:"reference"`
	Booking   queries.BookingView `json:"booking"`
}
