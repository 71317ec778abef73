package agent

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Urgency represents how pressed the delivery agent currently is about its
// work. It replaces a raw status integer with a small state machine so that
// only meaningful transitions are possible.
//
// State transitions:
//
//	Normal ──┬──> Selected ──> Arrived
//	         │        │
//	         │        └──┐
//	         └──> Arrived┘
//	(Reset returns any state to Normal)
//
// Normal is the everyday state. Selected marks an order picked under time
// pressure, because its house would spoil the pizza before a leisurely
// arrival. Arrived marks the agent considering itself at (or effectively at)
// a pressed destination; while Arrived, time-pressure checks are suppressed.
type Urgency int

const (
	// Unknown represents an invalid or undefined urgency.
	// This value (0) helps catch uninitialized Urgency values.
	Unknown Urgency = iota

	// Normal is the default urgency for an agent going about its rounds.
	Normal

	// Selected indicates the current order was chosen under time pressure.
	// Re-selecting under pressure is allowed while still Selected.
	Selected

	// Arrived indicates the agent reached a pressed destination. While
	// Arrived, time-pressure checks back off until the next delivery resets
	// the state.
	Arrived
)

// getUrgencyStrings returns a map of Urgency values to their string
// representations. All values are included for string conversion.
func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		Unknown:  "Unknown",
		Normal:   "Normal",
		Selected: "Selected",
		Arrived:  "Arrived",
	}
}

// getValidUrgencyStrings returns a map of only valid Urgency values.
// Only valid values are included to support validation.
func getValidUrgencyStrings() map[Urgency]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Urgency]string{
		Normal:   "Normal",
		Selected: "Selected",
		Arrived:  "Arrived",
	}
}

// Validate checks if the Urgency value is valid.
//
// Valid values are: Normal, Selected, Arrived.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the urgency is valid
//   - error with details if the urgency is invalid
func (u Urgency) Validate() error {
	if _, ok := getValidUrgencyStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("urgency is invalid", fmt.Errorf("%d is not a valid urgency", u))
	}
	return nil
}

// String returns the human-readable name of the urgency.
//
// Returns:
//   - "Normal", "Selected", or "Arrived" for valid values
//   - "Unknown" for invalid values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Urgency value, including invalid ones.
func (u Urgency) String() string {
	if str, ok := getUrgencyStrings()[u]; ok {
		return str
	}
	return "Unknown"
}

// Select transitions the urgency to Selected.
//
// Valid transitions:
//   - Normal -> Selected (order chosen under time pressure)
//   - Selected -> Selected (still pressed; a new pressed order was chosen)
//
// Invalid transitions:
//   - Arrived -> Selected (pressure checks are suppressed while Arrived)
//   - Unknown -> Selected (invalid initial state)
//
// Returns:
//   - (Selected, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current state
func (u Urgency) Select() (Urgency, error) {
	if u != Normal && u != Selected {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"urgency is invalid",
			fmt.Errorf("%s is not a valid urgency to select from", u.String()),
		)
	}

	return Selected, nil
}

// Arrive transitions the urgency to Arrived.
//
// Valid transitions:
//   - Selected -> Arrived (closed in on a pressed destination)
//   - Normal -> Arrived (a just-served distance matched another pressed house)
//
// Invalid transitions:
//   - Arrived -> Arrived (already there)
//   - Unknown -> Arrived (invalid initial state)
//
// Returns:
//   - (Arrived, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current state
func (u Urgency) Arrive() (Urgency, error) {
	if u != Normal && u != Selected {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"urgency is invalid",
			fmt.Errorf("%s is not a valid urgency to arrive from", u.String()),
		)
	}

	return Arrived, nil
}

// Reset returns the urgency to Normal. Used after a completed delivery;
// valid from any state.
func (u Urgency) Reset() Urgency {
	return Normal
}
