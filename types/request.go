package types

import "context"

// RequestRecord is an immutable request identity and its position in the batch.
type RequestRecord struct {
	// ID is the request identity used as the placement hash key.
	ID string `json:"id"`

	// Position is the zero-based index of the request in its batch.
	Position int `json:"position"`
}

// RequestSource provides the ordered batch of requests for a run.
//
// Order is significant: earlier requests claim scarce capacity first.
type RequestSource interface {
	// ListRequests returns the request batch in processing order.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []RequestRecord: Ordered request batch
	//   - error: Discovery error (nil on success)
	ListRequests(ctx context.Context) ([]RequestRecord, error)
}
