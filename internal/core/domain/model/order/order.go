package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

const (
	// DefaultTimeToDeliver is the delivery estimate, in minutes, an order
	// carries until the merchant sets one on acceptance.
	DefaultTimeToDeliver = 30

	// MinTimeToDeliver is the smallest delivery estimate a merchant may set.
	MinTimeToDeliver = 1

	maxNoteLength = 1024
)

// Order is the aggregate root for a customer's order.
//
// Invariants:
//   - The food set is non-empty and all foods belong to the same restaurant
//     (checked at creation; the restaurant is derived, never stored)
//   - At most one of cancelled and delivered ever becomes true
//   - delivered requires accepted and requires not cancelled
//   - Cancellation is only permitted before acceptance, for either party
//   - Each lifecycle timestamp is set at most once, when its flag flips
//   - timeToDeliver is at least MinTimeToDeliver and only meaningful once accepted
//
// The customer reference is nullable: deleting a customer account clears the
// reference without deleting the order. Orders are never physically deleted;
// cancellation and delivery are terminal flag-sets, not removals.
type Order struct {
	id         kernel.UUID
	customerID *kernel.UUID
	foodIDs    []kernel.UUID
	note       string

	accepted  bool
	cancelled bool
	delivered bool

	createdAt   time.Time
	acceptedAt  *time.Time
	cancelledAt *time.Time
	deliveredAt *time.Time

	timeToDeliver int

	isConstructed bool
}

// DeriveRestaurantID computes the restaurant an order belongs to from its
// food items. All foods must belong to the same restaurant; the first food's
// restaurant is canonical. An empty food set is rejected.
func DeriveRestaurantID(foods []*restaurant.Food) (kernel.UUID, error) {
	if len(foods) == 0 {
		return kernel.UUID{}, errs.NewValueIsRequiredError("foods")
	}

	restaurantID := foods[0].RestaurantID()
	for _, food := range foods {
		if err := food.Validate(); err != nil {
			return kernel.UUID{}, err
		}
		if !food.RestaurantID().IsEqual(restaurantID) {
			return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("foods",
				errors.New("all ordered foods should be from one restaurant"))
		}
	}

	return restaurantID, nil
}

// NewOrder places a new order for the given customer.
//
// The food set must be non-empty and uniform in restaurant, regardless of its
// ordering. On success the order is in Placed status with all flags false,
// the creation timestamp set to the current time and timeToDeliver defaulted
// to DefaultTimeToDeliver.
func NewOrder(id kernel.UUID, customerID kernel.UUID, foods []*restaurant.Food, note string) (*Order, error) {
	o := &Order{
		timeToDeliver: DefaultTimeToDeliver,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setFoods(foods),
		o.setNote(note),
	); err != nil {
		return nil, err
	}

	o.createdAt = time.Now().UTC()
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the placing customer's id, or nil when the customer
// account has been deleted.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// FoodIDs returns the ids of the ordered foods. The slice is a copy;
// insertion order carries no meaning.
func (o *Order) FoodIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(o.foodIDs))
	copy(ids, o.foodIDs)
	return ids
}

// Note returns the customer's free-text note.
func (o *Order) Note() string {
	return o.note
}

// IsAccepted reports whether the merchant has accepted the order.
func (o *Order) IsAccepted() bool {
	return o.accepted
}

// IsCancelled reports whether the order has been cancelled.
func (o *Order) IsCancelled() bool {
	return o.cancelled
}

// IsDelivered reports whether the customer has confirmed delivery.
func (o *Order) IsDelivered() bool {
	return o.delivered
}

// Status returns the lifecycle status derived from the order's flags.
func (o *Order) Status() Status {
	return StatusFromFlags(o.accepted, o.cancelled, o.delivered)
}

// CreatedAt returns the creation timestamp, set once when the order is placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns the acceptance timestamp, or nil while unaccepted.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// CancelledAt returns the cancellation timestamp, or nil while not cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// DeliveredAt returns the delivery-confirmation timestamp, or nil while
// undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// TimeToDeliver returns the delivery estimate in minutes. It is only
// meaningful once the order is accepted.
func (o *Order) TimeToDeliver() int {
	return o.timeToDeliver
}

// Accept marks the order as accepted by the merchant with the given
// delivery-time estimate in minutes.
//
// Precondition: not accepted and not cancelled. The precondition is
// re-checked from the current flags, so a second accept (or an accept racing
// a cancel) is rejected as a conflict and leaves the order unchanged.
func (o *Order) Accept(timeToDeliver int) error {
	if o.cancelled {
		return errs.NewConflictError("accept order", "order is already cancelled")
	}
	if o.accepted {
		return errs.NewConflictError("accept order", "order is already accepted")
	}
	if timeToDeliver < MinTimeToDeliver {
		return errs.NewValueIsInvalidErrorWithCause("timeToDeliver",
			fmt.Errorf("%d is less than %d minute", timeToDeliver, MinTimeToDeliver))
	}

	now := time.Now().UTC()
	o.accepted = true
	o.acceptedAt = &now
	o.timeToDeliver = timeToDeliver
	return nil
}

// Cancel marks the order as cancelled. Used by both the customer-cancel and
// merchant-cancel transitions; which party may invoke it is decided by the
// authorization predicates, the state rule is the same for both.
//
// Precondition: not accepted and not cancelled. Once accepted, an order
// cannot be cancelled by either party; it can only proceed to delivery
// confirmation.
func (o *Order) Cancel() error {
	if o.cancelled {
		return errs.NewConflictError("cancel order", "order is already cancelled")
	}
	if o.accepted {
		return errs.NewConflictError("cancel order", "order is already accepted")
	}

	now := time.Now().UTC()
	o.cancelled = true
	o.cancelledAt = &now
	return nil
}

// ApproveDelivered marks the order as delivered, confirmed by the customer.
//
// Precondition: accepted, not cancelled, not delivered.
func (o *Order) ApproveDelivered() error {
	if o.cancelled {
		return errs.NewConflictError("approve delivery", "order is already cancelled")
	}
	if !o.accepted {
		return errs.NewConflictError("approve delivery", "order is not accepted")
	}
	if o.delivered {
		return errs.NewConflictError("approve delivery", "order is already delivered")
	}

	now := time.Now().UTC()
	o.delivered = true
	o.deliveredAt = &now
	return nil
}

// DetachCustomer clears the customer reference when the customer account is
// deleted. The order itself survives.
func (o *Order) DetachCustomer() {
	o.customerID = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = &customerID
	return nil
}

func (o *Order) setFoods(foods []*restaurant.Food) error {
	if _, err := DeriveRestaurantID(foods); err != nil {
		return err
	}

	o.foodIDs = make([]kernel.UUID, len(foods))
	for i, food := range foods {
		o.foodIDs[i] = food.ID()
	}
	return nil
}

func (o *Order) setNote(note string) error {
	if len(note) > maxNoteLength {
		return errs.NewValueIsOutOfRangeError("note", len(note), 0, maxNoteLength)
	}
	o.note = note
	return nil
}

// RestoreOrder reconstructs an Order from persistence, validating that the
// stored flag and timestamp combination is a reachable lifecycle state.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	foodIDs []kernel.UUID,
	note string,
	accepted, cancelled, delivered bool,
	createdAt time.Time,
	acceptedAt, cancelledAt, deliveredAt *time.Time,
	timeToDeliver int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(foodIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("foods")
	}
	if cancelled && delivered {
		return nil, errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("order cannot be both cancelled and delivered"))
	}
	if delivered && !accepted {
		return nil, errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("delivered order must be accepted"))
	}
	if accepted && acceptedAt == nil {
		return nil, errs.NewValueIsRequiredError("acceptedAt")
	}
	if cancelled && cancelledAt == nil {
		return nil, errs.NewValueIsRequiredError("cancelledAt")
	}
	if delivered && deliveredAt == nil {
		return nil, errs.NewValueIsRequiredError("deliveredAt")
	}
	if timeToDeliver < MinTimeToDeliver {
		return nil, errs.NewValueIsInvalidErrorWithCause("timeToDeliver",
			fmt.Errorf("%d is less than %d minute", timeToDeliver, MinTimeToDeliver))
	}

	o := &Order{
		id:            id,
		customerID:    customerID,
		note:          note,
		accepted:      accepted,
		cancelled:     cancelled,
		delivered:     delivered,
		createdAt:     createdAt,
		acceptedAt:    acceptedAt,
		cancelledAt:   cancelledAt,
		deliveredAt:   deliveredAt,
		timeToDeliver: timeToDeliver,
		isConstructed: true,
	}
	o.foodIDs = make([]kernel.UUID, len(foodIDs))
	copy(o.foodIDs, foodIDs)

	if err := o.setNote(note); err != nil {
		return nil, err
	}

	return o, nil
}
