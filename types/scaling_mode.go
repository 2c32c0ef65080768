package types

// ScalingMode selects one of the two fixed server pool configurations.
//
// Both modes provide the same total capacity; they differ in how that
// capacity is spread:
//
//	ScalingHorizontal: more servers, lower capacity each (6 x 2)
//	ScalingVertical:   fewer servers, higher capacity each (4 x 3)
type ScalingMode string

const (
	// ScalingHorizontal is the enlarged-pool, lower-capacity mode.
	ScalingHorizontal ScalingMode = "horizontal"

	// ScalingVertical is the baseline mode. It is also the fallback for any
	// selector that is not recognized.
	ScalingVertical ScalingMode = "vertical"
)

// ParseScalingMode resolves a caller-supplied selector to a ScalingMode.
//
// The selector is an open enumeration: only the exact value "horizontal"
// selects ScalingHorizontal, everything else (including "" and unknown
// values) resolves to ScalingVertical. Unknown input is never an error.
//
// Parameters:
//   - choice: Raw selector value as received from the caller
//
// Returns:
//   - ScalingMode: Resolved scaling mode
func ParseScalingMode(choice string) ScalingMode {
	if ScalingMode(choice) == ScalingHorizontal {
		return ScalingHorizontal
	}

	return ScalingVertical
}

// String returns the string representation of the scaling mode.
func (m ScalingMode) String() string {
	return string(m)
}
