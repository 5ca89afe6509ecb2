// Package model defines the field collection a form controller operates on.
// A Form owns its fields in document order; radio inputs sharing a name form
// a group, and Payload derives the flat name/value mapping submitted to the
// remote endpoint using browser form-data semantics.
package model
