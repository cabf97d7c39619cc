// Package postgres provides a PostgreSQL implementation of the user store for
// deployments that do not run MongoDB. Users are kept as JSONB documents in a
// single table keyed by a server-generated UUID, so the document semantics of
// the store interface (whole-document reads, null-valued fields) carry over
// unchanged. The schema is applied with goose from embedded migrations.
package postgres
