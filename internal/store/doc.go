// Package store defines the persistence interfaces for the study platform's
// domain entities, along with the shared error taxonomy and transaction
// helpers their implementations use.
package store
