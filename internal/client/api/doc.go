// Package api implements the HTTP contract between the taskboard client and
// its backend.
//
// All traffic goes through Client.Request (or the typed Do helper), which
// injects the bearer credential, encodes the body, and normalizes the two
// response shapes the backend may produce (the structured
// {success, message, data, errors} envelope and bare/legacy {detail}
// bodies) into a payload or a single *Error type. Callers never see raw
// transport errors or undecoded envelopes.
package api
