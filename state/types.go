package state

// Value is the tri-value assignment of an edge.
type Value uint8

const (
	// Unknown edges have not yet been decided.
	Unknown Value = iota
	// On edges are part of the loop.
	On
	// Off edges are excluded from the loop.
	Off
)

// String renders a Value for debugging and test failure messages.
func (v Value) String() string {
	switch v {
	case On:
		return "On"
	case Off:
		return "Off"
	default:
		return "Unknown"
	}
}
