// Package order provides domain entities and business logic for order management
// in the counter-service restaurant. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: A value object for one order line (name, unit price, quantity)
//   - Status: A state machine that enforces valid order status transitions
//   - Stage/Pipeline: The declarative ordered stage table driving the state machine
//
// Key business rules:
//   - Orders must have a positive store-issued identifier and at least one item
//   - Order status follows a defined workflow: Cooking -> AwaitingPayment -> Served
//   - Status never reverts and never skips a stage; each transition command
//     targets exactly one next stage
//   - Entering AwaitingPayment triggers the customer ready notification;
//     entering Served emits the itemized receipt
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
