// Package kernel contains the shared value objects of the domain model.
// Types here are immutable, constructor-validated and free of any
// infrastructure concerns; entities and aggregates in the restaurant and
// order packages build on them.
package kernel
