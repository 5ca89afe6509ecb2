// Package submit posts a form payload as JSON to a fixed endpoint and decodes
// the `{"status": ..., "message": ...}` reply. Exactly one request is made per
// call: retries are disabled and no timeout is imposed beyond the transport
// defaults and the caller's context.
package submit
