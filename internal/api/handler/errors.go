package handler

// ErrorResponse is the envelope of every 4xx/5xx response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// Failure attaches the client-facing message of a route to an unexpected
// error. The cause is logged, never returned.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func fail(err error, msg string) error {
	return &Failure{Message: msg, Err: err}
}
