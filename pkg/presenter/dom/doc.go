// Package dom implements the controller's Presenter over a parsed HTML page
// that follows the form DOM contract:
//
//   - text inputs sit inside `.form-group > .input-wrapper`; an error adds the
//     `error` class to the wrapper and fills the group's `.error-message`,
//     adding the `visible` class;
//   - radio groups and the `.consent-checkbox` toggle their `.error-message`
//     through inline `display` instead of a class;
//   - `.feedback-message` is the banner and `.loading-spinner` the loading
//     indicator.
//
// The presenter mutates the goquery document in place; HTML renders it back.
package dom
