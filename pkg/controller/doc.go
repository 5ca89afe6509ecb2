// Package controller drives a form: it validates fields as the user edits
// them, reports feedback through a Presenter, and submits valid forms through
// a Submitter.
//
// Each submission moves through Idle → Validating → Invalid → Idle, or
// Idle → Validating → Submitting → Succeeded|Failed → Idle. Submission
// failures are reported in the returned Outcome and through a failure banner;
// they are never returned as Go errors. Overlapping submissions are allowed
// unless WithSubmitGuard is set.
package controller
