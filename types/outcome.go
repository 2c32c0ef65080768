package types

// Status is the placement result for a single request.
type Status string

const (
	// StatusAccepted indicates the request was placed on a server.
	StatusAccepted Status = "ACCEPTED"

	// StatusFailed indicates every probed server was full until the retry ceiling.
	StatusFailed Status = "FAILED"
)

// NoServer is the server identity reported for a failed placement.
const NoServer = "none"

// AssignmentOutcome is the placement result for one request.
type AssignmentOutcome struct {
	// Request is the request identity.
	Request string `json:"request"`

	// Server is the accepting slot name, or NoServer on failure.
	Server string `json:"server"`

	// Attempts is the number of hash probes consumed (>= 1).
	Attempts int `json:"attempts"`

	// Status is ACCEPTED or FAILED.
	Status Status `json:"status"`
}

// Accepted reports whether the request was placed.
func (o AssignmentOutcome) Accepted() bool {
	return o.Status == StatusAccepted
}

// Retries returns the number of probes beyond the first.
func (o AssignmentOutcome) Retries() int {
	return max(o.Attempts-1, 0)
}

// BatchResult is the complete result of one batch run.
//
// It is the sole value handed back to the caller and serializes to the
// response shape of the /run endpoint.
type BatchResult struct {
	// Choice echoes the caller's selector verbatim.
	Choice string `json:"choice"`

	// Servers is the final pool state, loads included.
	Servers []*ServerSlot `json:"servers"`

	// Results holds one outcome per request in batch order.
	Results []AssignmentOutcome `json:"results"`

	// TotalRequests is the batch size.
	TotalRequests int `json:"total_requests"`

	// Accepted is the number of ACCEPTED outcomes.
	Accepted int `json:"accepted"`

	// Retries is the sum over outcomes of (attempts - 1).
	Retries int `json:"retries"`
}

// Failed returns the number of FAILED outcomes.
func (r *BatchResult) Failed() int {
	return r.TotalRequests - r.Accepted
}
