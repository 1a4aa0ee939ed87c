// Package contract holds the request-validation and resource-lifecycle
// rules shared by every CRUD endpoint: required-field validation, lookup
// classification, pagination defaults and the outcome to status table.
//
// Everything here is pure. Functions perform no I/O and keep no state, so
// they are safe to call from any number of request goroutines.
package contract
