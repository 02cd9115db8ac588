// Package store is the PostgreSQL persistence layer of the forum API.
//
// Queries are built with squirrel using dollar placeholders and executed
// through database/sql on the pgx stdlib driver. Driver errors are mapped to
// the sentinel errors in errors.go so the service and HTTP layers can match
// them with errors.Is.
package store
