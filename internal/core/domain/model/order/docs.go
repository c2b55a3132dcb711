// Package order contains the central aggregate of the marketplace: the
// customer's order and its lifecycle state machine.
//
// An order is placed against the menu of exactly one restaurant, then moves
// through the lifecycle
//
//	Placed ──> Accepted ──> Delivered
//	   │
//	   └─────> Cancelled
//
// driven by three boolean flags (accepted, cancelled, delivered) and four
// write-once timestamps. Cancellation is only possible while the order is
// still unaccepted - once a merchant accepts, neither party can cancel and
// the only remaining transition is the customer confirming delivery. Every
// transition re-checks its precondition from the current flags, so a
// conflicting transition is rejected rather than silently re-applied.
//
// The aggregate holds authorization-free state logic; which party may invoke
// which transition is decided by the predicates in the services package.
package order
