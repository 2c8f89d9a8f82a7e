package booking

// CreateBookingRequest is the body accepted by POST /bookings. Date must be
// an ISO 8601 / RFC 3339 datetime; Status falls back to "Work Order" when
// the client omits it.
type CreateBookingRequest struct {
	Title       string  `json:"title" validate:"required,min=1"`
	Description *string `json:"description" validate:"omitempty"`
	Status      string  `json:"status"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// ApplyDefaults fills fields the client may omit. The validation middleware
// runs this before the validator so downstream code sees the final value.
func (r *CreateBookingRequest) ApplyDefaults() {
	if r.Status == "" {
		r.Status = "Work Order"
	}
}

// CreateMessageRequest is the non-file part of POST /bookings/:id/messages.
// The request arrives as multipart form data, so the controller fills this
// from the form values rather than a JSON body.
type CreateMessageRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}
