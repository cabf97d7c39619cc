// Package store defines the persistence contract for user records and the
// errors every storage backend reports through it. Concrete backends live
// under internal/platform.
package store
