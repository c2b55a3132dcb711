// Package restaurant contains the catalog side of the marketplace: the
// Restaurant entity and its Food menu items.
//
// A restaurant is owned by exactly one merchant, and a merchant owns at most
// one restaurant - this is an explicit invariant of the model, enforced by
// the create-restaurant use case, not an artifact of a query returning the
// first of several rows. Foods belong to exactly one restaurant and are
// created and updated only by the owning merchant.
package restaurant
