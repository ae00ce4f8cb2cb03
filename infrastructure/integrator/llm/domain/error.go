package llmdomain

// ErrorResponse is the error body of the messages API.
type ErrorResponse struct {
	Type  string       `json:"type"`
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *ErrorResponse) IsOverloaded() bool {
	return e.Error.Type == "overloaded_error"
}
