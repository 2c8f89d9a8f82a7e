package types

// ServiceResponse is the uniform envelope returned by every service call.
// Success is true iff StatusCode is a 2xx code, and ResponseObject is nil
// whenever Success is false. Controllers copy StatusCode onto the HTTP
// response verbatim and serialize the whole envelope as the body, error
// paths included, so clients always parse the same shape.
type ServiceResponse struct {
	Success        bool        `json:"success"`
	Message        string      `json:"message"`
	ResponseObject interface{} `json:"responseObject"`
	StatusCode     int         `json:"statusCode"`
}

// Success builds a successful envelope. statusCode must be a 2xx code.
func Success(message string, responseObject interface{}, statusCode int) *ServiceResponse {
	return &ServiceResponse{
		Success:        true,
		Message:        message,
		ResponseObject: responseObject,
		StatusCode:     statusCode,
	}
}

// Failure builds a failed envelope with a nil response object.
func Failure(message string, statusCode int) *ServiceResponse {
	return &ServiceResponse{
		Success:        false,
		Message:        message,
		ResponseObject: nil,
		StatusCode:     statusCode,
	}
}
