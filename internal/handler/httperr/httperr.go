package httperr

// Response is the envelope written for requests that never produced a body,
// such as recovered panics.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}
