// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional .env file. It provides type-safe
// access to server and document store settings while keeping configuration
// details separate from request handling.
package config
