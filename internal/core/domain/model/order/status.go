package order

import (
	"fmt"

	"eatery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct counter-service workflow.
//
// State transitions:
//
//	Cooking ──> AwaitingPayment ──> Served
//
// Each transition targets exactly one next stage; stages are never
// skipped and never revert. Status is a value object that validates
// state transitions and provides string representations for display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Cooking is the initial status when an order is submitted.
	// The kitchen is preparing the order.
	Cooking

	// AwaitingPayment indicates the food is ready and the customer has
	// been called to the counter to pay and pick up. This is the stage
	// whose transition triggers the customer notification.
	AwaitingPayment

	// Served indicates the customer has paid and received the order.
	// This is the terminal paid state with no further transitions.
	Served
)

// Operator roles authorized to trigger pipeline transitions. Roles are
// carried as pipeline data; enforcing them is out of scope.
const (
	RoleCustomer = "customer"
	RoleKitchen  = "kitchen"
	RoleCashier  = "cashier"
)

// Stage describes one step of the order pipeline as data: which status
// it represents, which status must precede it, which inbound command
// triggers it, which role issues that command, which audience the entry
// broadcast addresses, and whether entering it has a side effect
// (customer call-out, receipt).
type Stage struct {
	// Status is the pipeline stage this entry describes.
	Status Status

	// Predecessor is the only status a transition into this stage may
	// start from. Unknown marks the first stage, which is entered on
	// submission rather than by a transition command.
	Predecessor Status

	// Command is the inbound terminal command that targets this stage.
	// Empty for the first stage.
	Command string

	// Role is the operator role that issues Command.
	Role string

	// Audience names the terminals the entry broadcast addresses.
	Audience string

	// EntryEvent is the event name broadcast when an order enters this stage.
	EntryEvent string

	// Ready marks the stage whose entry triggers the customer
	// ready-for-pickup notification.
	Ready bool

	// Paid marks the terminal stage counted by the revenue aggregate and
	// whose entry emits the itemized receipt unicast.
	Paid bool
}

// pipeline is the canonical ordered stage table. Reordering stages or
// renaming commands is a data change, not a control-flow change.
var pipeline = []Stage{
	{
		Status:     Cooking,
		Role:       RoleCustomer,
		Audience:   "kitchen",
		EntryEvent: "new_kitchen_order",
	},
	{
		Status:      AwaitingPayment,
		Predecessor: Cooking,
		Command:     "cooking_complete",
		Role:        RoleKitchen,
		Audience:    "all",
		EntryEvent:  "status_updated",
		Ready:       true,
	},
	{
		Status:      Served,
		Predecessor: AwaitingPayment,
		Command:     "confirm_payment",
		Role:        RoleCashier,
		Audience:    "all",
		EntryEvent:  "status_updated",
		Paid:        true,
	},
}

// Pipeline returns a copy of the ordered stage table.
func Pipeline() []Stage {
	stages := make([]Stage, len(pipeline))
	copy(stages, pipeline)
	return stages
}

// FirstStage returns the status assigned to a freshly submitted order.
func FirstStage() Status {
	return pipeline[0].Status
}

// ReadyStage returns the status whose entry triggers the customer
// ready-for-pickup notification.
func ReadyStage() Status {
	for _, stage := range pipeline {
		if stage.Ready {
			return stage.Status
		}
	}
	return Unknown
}

// PaidStage returns the terminal status counted by the revenue aggregate.
func PaidStage() Status {
	for _, stage := range pipeline {
		if stage.Paid {
			return stage.Status
		}
	}
	return Unknown
}

// StageForCommand resolves an inbound terminal command to the stage it
// targets. Returns false for unknown commands.
func StageForCommand(command string) (Status, bool) {
	if command == "" {
		return Unknown, false
	}
	for _, stage := range pipeline {
		if stage.Command == command {
			return stage.Status, true
		}
	}
	return Unknown, false
}

// stageOf returns the stage table entry describing s.
func stageOf(s Status) (Stage, bool) {
	for _, stage := range pipeline {
		if stage.Status == s {
			return stage, true
		}
	}
	return Stage{}, false
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Cooking:         "Cooking",
		AwaitingPayment: "AwaitingPayment",
		Served:          "Served",
	}
}

// Validate checks if the Status value is a valid pipeline stage.
//
// Valid statuses are: Cooking, AwaitingPayment, Served.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := stageOf(s); !ok {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(pipeline[0].Status), int(pipeline[len(pipeline)-1].Status))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// EntryEvent returns the event name broadcast when an order enters s,
// or the empty string for an invalid status.
func (s Status) EntryEvent() string {
	stage, ok := stageOf(s)
	if !ok {
		return ""
	}
	return stage.EntryEvent
}

// Audience returns the terminal group the entry broadcast of s
// addresses, or the empty string for an invalid status.
func (s Status) Audience() string {
	stage, ok := stageOf(s)
	if !ok {
		return ""
	}
	return stage.Audience
}

// Role returns the operator role authorized to trigger the transition
// into s, or the empty string for an invalid status.
func (s Status) Role() string {
	stage, ok := stageOf(s)
	if !ok {
		return ""
	}
	return stage.Role
}

// IsReady reports whether s is the customer call-out stage.
func (s Status) IsReady() bool {
	stage, ok := stageOf(s)
	return ok && stage.Ready
}

// IsPaid reports whether s is the terminal paid stage.
func (s Status) IsPaid() bool {
	stage, ok := stageOf(s)
	return ok && stage.Paid
}

// AdvanceTo validates the transition from s into target.
//
// The transition is allowed iff target is a pipeline stage with a
// configured predecessor and s equals that predecessor. The first stage
// can never be the target of a transition.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if the transition is not allowed from s
func (s Status) AdvanceTo(target Status) (Status, error) {
	stage, ok := stageOf(target)
	if !ok || stage.Predecessor == Unknown {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid transition target", target),
		)
	}

	if s != stage.Predecessor {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot advance to %s", s, target),
		)
	}

	return target, nil
}
