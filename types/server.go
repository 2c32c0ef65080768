package types

// ServerSlot is an abstract, capacity-bounded server for a single batch run.
//
// Requests holds accepted request identities in acceptance order. The slot
// never holds more than MaxCapacity requests; Accept is the only mutator.
type ServerSlot struct {
	// Name identifies the slot (e.g., "Server-0").
	Name string `json:"name"`

	// Requests lists accepted request identities in acceptance order.
	Requests []string `json:"requests"`

	// MaxCapacity is the maximum number of requests the slot may hold.
	MaxCapacity int `json:"max_capacity"`
}

// NewServerSlot creates an empty slot with the given name and capacity.
func NewServerSlot(name string, capacity int) *ServerSlot {
	return &ServerSlot{
		Name:        name,
		Requests:    make([]string, 0, max(capacity, 0)),
		MaxCapacity: capacity,
	}
}

// Load returns the number of accepted requests.
func (s *ServerSlot) Load() int {
	return len(s.Requests)
}

// Full reports whether the slot has reached its capacity.
func (s *ServerSlot) Full() bool {
	return len(s.Requests) >= s.MaxCapacity
}

// Accept appends the request identity if the slot has room.
//
// Returns:
//   - bool: true if the request was accepted, false if the slot is full
func (s *ServerSlot) Accept(requestID string) bool {
	if s.Full() {
		return false
	}
	s.Requests = append(s.Requests, requestID)

	return true
}

// ServerPool is the ordered, fixed-size set of slots used by one batch run.
//
// Composition never changes during a run. A pool is owned by exactly one run
// and must not be shared between concurrent batches.
type ServerPool struct {
	Slots []*ServerSlot `json:"servers"`
}

// Size returns the number of slots in the pool. A nil pool has size 0.
func (p *ServerPool) Size() int {
	if p == nil {
		return 0
	}

	return len(p.Slots)
}

// Slot returns the slot at index i.
func (p *ServerPool) Slot(i int) *ServerSlot {
	return p.Slots[i]
}

// TotalCapacity returns the sum of slot capacities.
func (p *ServerPool) TotalCapacity() int {
	total := 0
	for _, s := range p.Slots {
		total += s.MaxCapacity
	}

	return total
}

// TotalLoad returns the sum of accepted requests across all slots.
func (p *ServerPool) TotalLoad() int {
	total := 0
	for _, s := range p.Slots {
		total += s.Load()
	}

	return total
}
