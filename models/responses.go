package models

// Values of StatusResponse.Status.
const (
	StatusSuccess      = "Success"
	StatusSessionAdded = "Success session_added"
	StatusFailed       = "FAILED"
)

// StatusResponse is the JSON body returned by account endpoints:
// {"status":"Success"} or {"status":"FAILED","reason":"..."}.
type StatusResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Success returns a successful StatusResponse.
func Success() StatusResponse {
	return StatusResponse{Status: StatusSuccess}
}

// SessionAdded is the answer to a successful login.
func SessionAdded() StatusResponse {
	return StatusResponse{Status: StatusSessionAdded}
}

// Failed returns a failed StatusResponse carrying reason.
func Failed(reason string) StatusResponse {
	return StatusResponse{Status: StatusFailed, Reason: reason}
}

// ThreadList is the JSON body of GET /api/threads.
type ThreadList struct {
	Threads []Thread `json:"threads"`
	Limit   uint64   `json:"limit"`
	Offset  uint64   `json:"offset"`
}
