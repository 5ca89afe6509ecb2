package submit

// StatusSuccess is the only status treated as an accepted submission.
const StatusSuccess = "success"

// Response is the decoded endpoint reply.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	// HTTPStatus records the transport status code. It is informational only;
	// the body decides the outcome.
	HTTPStatus int `json:"-"`
}

// Succeeded reports whether the endpoint accepted the submission.
func (r Response) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Err returns nil for accepted submissions and a *RejectedError otherwise.
func (r Response) Err() error {
	if r.Succeeded() {
		return nil
	}
	return &RejectedError{Status: r.Status, Message: r.Message}
}
