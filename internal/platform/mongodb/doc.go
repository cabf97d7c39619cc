// Package mongodb implements the store interfaces on top of MongoDB using the
// official Go driver. User records are stored one document per user in a
// single collection, keyed by a driver-generated ObjectID whose hex form is
// the public user ID.
package mongodb
