package pool

import (
	"fmt"

	"github.com/arloliu/placer/types"
)

const (
	// DefaultNamePrefix is the prefix for slot names ("Server-0", "Server-1", ...).
	DefaultNamePrefix = "Server"

	defaultHorizontalServers  = 6
	defaultHorizontalCapacity = 2
	defaultVerticalServers    = 4
	defaultVerticalCapacity   = 3
)

// Shape describes the size of a pool: how many slots and the capacity of each.
type Shape struct {
	// Servers is the number of slots (must be >= 1).
	Servers int `yaml:"servers"`

	// Capacity is the per-slot maximum number of requests (must be >= 1).
	Capacity int `yaml:"capacity"`
}

// TotalCapacity returns Servers * Capacity.
func (s Shape) TotalCapacity() int {
	return s.Servers * s.Capacity
}

// Validate checks that the shape describes a usable pool.
func (s Shape) Validate() error {
	if s.Servers < 1 {
		return fmt.Errorf("%w: servers=%d", types.ErrEmptyPool, s.Servers)
	}
	if s.Capacity < 1 {
		return fmt.Errorf("%w: capacity=%d", types.ErrInvalidCapacity, s.Capacity)
	}

	return nil
}

// Shapes maps each scaling mode to its pool shape.
type Shapes struct {
	// Horizontal is the enlarged-pool shape (default 6 x 2).
	Horizontal Shape `yaml:"horizontal"`

	// Vertical is the baseline shape (default 4 x 3).
	Vertical Shape `yaml:"vertical"`
}

// DefaultShapes returns the reference shapes: horizontal 6 x 2, vertical 4 x 3.
func DefaultShapes() Shapes {
	return Shapes{
		Horizontal: Shape{Servers: defaultHorizontalServers, Capacity: defaultHorizontalCapacity},
		Vertical:   Shape{Servers: defaultVerticalServers, Capacity: defaultVerticalCapacity},
	}
}

// For returns the shape for a scaling mode. Unknown modes get the vertical shape.
func (s Shapes) For(mode types.ScalingMode) Shape {
	if mode == types.ScalingHorizontal {
		return s.Horizontal
	}

	return s.Vertical
}

// Option configures pool construction.
type Option func(*options)

type options struct {
	namePrefix string
}

// WithNamePrefix sets the slot name prefix (default "Server").
//
// Parameters:
//   - prefix: Prefix joined to the zero-based slot index with "-"
//
// Returns:
//   - Option: Configuration option
func WithNamePrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.namePrefix = prefix
		}
	}
}

// New creates a pool of identical, empty slots.
//
// This is the low-level constructor behind Build. It refuses degenerate shapes
// because a zero-slot pool makes modulo slot selection undefined.
//
// Parameters:
//   - servers: Number of slots (must be >= 1)
//   - capacity: Capacity of each slot (must be >= 1)
//   - opts: Optional configuration (WithNamePrefix)
//
// Returns:
//   - *types.ServerPool: Fresh pool owned by the caller
//   - error: ErrEmptyPool or ErrInvalidCapacity for degenerate shapes
//
// Example:
//
//	p, err := pool.New(1, 1) // adversarial single-slot pool
func New(servers, capacity int, opts ...Option) (*types.ServerPool, error) {
	if err := (Shape{Servers: servers, Capacity: capacity}).Validate(); err != nil {
		return nil, err
	}

	o := options{namePrefix: DefaultNamePrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	slots := make([]*types.ServerSlot, servers)
	for i := range slots {
		slots[i] = types.NewServerSlot(fmt.Sprintf("%s-%d", o.namePrefix, i), capacity)
	}

	return &types.ServerPool{Slots: slots}, nil
}

// Build creates the pool for a scaling-mode selector using the given shapes.
//
// The selector is resolved with types.ParseScalingMode, so unrecognized values
// (including "") produce the vertical pool rather than an error.
//
// Parameters:
//   - choice: Raw scaling-mode selector
//   - shapes: Pool shapes per mode (use DefaultShapes for the reference setup)
//   - opts: Optional configuration (WithNamePrefix)
//
// Returns:
//   - *types.ServerPool: Fresh pool owned by the caller
//   - types.ScalingMode: The resolved mode
//   - error: Non-nil only if the selected shape is degenerate
//
// Example:
//
//	p, mode, err := pool.Build("horizontal", pool.DefaultShapes())
//	// p.Size() == 6, mode == types.ScalingHorizontal
func Build(choice string, shapes Shapes, opts ...Option) (*types.ServerPool, types.ScalingMode, error) {
	mode := types.ParseScalingMode(choice)
	shape := shapes.For(mode)

	p, err := New(shape.Servers, shape.Capacity, opts...)
	if err != nil {
		return nil, mode, fmt.Errorf("build %s pool: %w", mode, err)
	}

	return p, mode, nil
}
