// Package api handles the HTTP side of the users resource: request decoding
// and validation, the calls into the user store, and the mapping of results
// and store errors onto HTTP responses.
package api
