// Package services contains domain services: logic that spans aggregates and
// does not belong to any single one of them.
//
// The authorization predicates answer "may this actor perform this operation
// on this object" for the two participating roles, customer and merchant.
// They are pure functions over the actor and the aggregates involved; they
// never touch the lifecycle flags themselves. State rules (may this
// transition happen at all) stay on the order aggregate, so a denied actor
// gets a forbidden error and a well-authorized but late actor gets a
// conflict.
package services
