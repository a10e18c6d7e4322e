package order

import (
	"fmt"

	"eatery/internal/pkg/errs"
)

// Item is a value object representing one line of an order: a menu item
// name, its unit price, and the ordered quantity.
//
// Item follows these invariants:
//   - Name must not be empty
//   - Price must be non-negative
//   - Quantity must be positive
//
// Item is immutable after construction through NewItem.
type Item struct {
	name     string
	price    float64
	quantity int
}

// NewItem creates a validated order line.
//
// Parameters:
//   - name: Menu item name (must not be empty)
//   - price: Unit price (must be non-negative)
//   - quantity: Ordered count (must be positive)
//
// Returns:
//   - Item: The created line if all validations pass
//   - error: Validation error if any parameter is invalid
func NewItem(name string, price float64, quantity int) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}

	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("price %v must not be negative", price),
		)
	}

	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("quantity %d must be positive", quantity),
		)
	}

	return Item{
		name:     name,
		price:    price,
		quantity: quantity,
	}, nil
}

// Name returns the menu item name.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns the ordered count.
func (i Item) Quantity() int {
	return i.quantity
}

// Total returns price multiplied by quantity for this line.
func (i Item) Total() float64 {
	return i.price * float64(i.quantity)
}
