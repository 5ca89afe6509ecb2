// Package validation evaluates the per-field rules of a form. Rules are
// checked in a fixed order and the first failure wins:
//
//  1. radio: some member of the group is checked
//  2. checkbox: the box is checked
//  3. required text-like field: the trimmed value is non-empty
//  4. email field with a value: local@domain.tld shape
//  5. tel field with a value: optional leading "+" then at least eight
//     digits, spaces or dashes
//
// The text rules are registered as custom go-playground/validator tags so
// they can also be reused on tagged structs.
package validation
