// Package account models the resolved identity of the party performing a
// request. Authentication itself is an external collaborator: by the time the
// core is invoked, the caller has already been authenticated and is handed in
// as an explicit Actor value. There is no ambient "current user" anywhere in
// the domain.
package account
