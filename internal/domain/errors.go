package domain

// ErrorResponse is the JSON body returned for failed API calls.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
