// Package errors provides structured errors for the creature lookup.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. Failures talking to the creature service are tagged with a kind
// so callers can tell them apart even though the search flow reports all of
// them the same way:
//
//	errors.Status(resp.StatusCode, "creature service returned an error")
//	errors.Transport(err, "failed to reach creature service")
//	errors.EmptyResult("creature response has no id")
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//	status, ok := errors.GetStatusCode(err)
package errors
