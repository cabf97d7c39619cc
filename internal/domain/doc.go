// Package domain contains the core entities of the users API: the User
// record, the set of writable user fields, and the Optional wrapper used to
// tell supplied request fields apart from omitted ones. It has no knowledge
// of HTTP or of any particular document store.
package domain
