// Package notification provides the value objects of the customer
// alerting side of the system: the durable push subscription descriptor
// and the push payload contract.
//
// The core never inspects subscription internals beyond validating that
// an endpoint exists; the descriptor is passed through to the
// push-delivery collaborator unchanged.
package notification
