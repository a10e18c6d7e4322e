package order

import (
	"errors"
	"time"

	"eatery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// ID is the process-unique numeric identifier of an order. Identifiers
// are assigned once at creation by the order store, strictly increase
// over the process lifetime, and are never reused.
type ID int64

// Validate checks that the identifier is a value the store could have issued.
func (id ID) Validate() error {
	if id < 1 {
		return errs.NewValueIsInvalidError("orderID")
	}
	return nil
}

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from submission through preparation to serving.
//
// Order follows these invariants:
//   - Must have a positive identifier, assigned once and immutable
//   - Must have at least one item
//   - Status only advances forward along the pipeline, never reverts or skips
//   - CreatedAt is immutable
//   - Can only be created through the NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the store-issued identifier for the order
	id ID

	// items is the ordered sequence of lines the customer submitted
	items []Item

	// status is the current stage in the order pipeline
	status Status

	// createdAt is the submission timestamp (process-local clock)
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
// The order starts in the pipeline's first stage.
//
// Parameters:
//   - id: Store-issued identifier (must be positive)
//   - items: Order lines (must not be empty, each validated via NewItem)
//   - createdAt: Submission timestamp (must not be zero)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id ID, items []Item, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	lines := make([]Item, len(items))
	copy(lines, items)

	return &Order{
		id:            id,
		items:         lines,
		status:        FirstStage(),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() ID {
	return o.id
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current pipeline stage of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the sum of price multiplied by quantity over all lines.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (o *Order) ItemCount() int {
	var count int
	for _, item := range o.items {
		count += item.Quantity()
	}
	return count
}

// AdvanceTo moves the order into the target stage.
//
// The transition is applied iff the order's current status equals the
// configured predecessor of target in the pipeline. Callers that need
// the check-then-set to be atomic must hold the store's lock while
// invoking this method.
//
// Returns:
//   - nil on a valid transition (status updated)
//   - error if the transition is not allowed (status unchanged)
func (o *Order) AdvanceTo(target Status) error {
	newStatus, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// View returns an immutable read model of the order for event payloads
// and API responses.
func (o *Order) View() View {
	items := make([]ItemView, len(o.items))
	for i, item := range o.items {
		items[i] = ItemView{
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		}
	}

	return View{
		ID:        o.id,
		Items:     items,
		Status:    o.status.String(),
		CreatedAt: o.createdAt,
		Total:     o.Total(),
	}
}

// View is the serializable read model of an order, used in broadcast and
// unicast event payloads and in API responses.
type View struct {
	ID        ID         `json:"id"`
	Items     []ItemView `json:"items"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	Total     float64    `json:"total"`
}

// ItemView is the serializable read model of one order line.
type ItemView struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
