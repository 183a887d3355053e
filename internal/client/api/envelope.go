package api

import "encoding/json"

// The backend answers in one of two shapes: a structured envelope
// {success, message, data, errors} or a bare/legacy body where errors carry
// a "detail" field (string or FastAPI-style validation list). Both are
// normalized here so callers only ever see the payload or an *Error.

// unwrapPayload returns the envelope's data value when body is an object
// with a "data" key, otherwise body itself (bare-JSON backends).
func unwrapPayload(body json.RawMessage) json.RawMessage {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return body
	}
	if data, ok := probe["data"]; ok {
		return data
	}
	return body
}

// errorFromBody builds the rejection error for a non-2xx response.
//
// Message preference order: envelope string "message" (field errors carried
// along), then string "detail", then the first "msg" of a validation-error
// list under "detail", then the caller-supplied fallback. The body decode is
// best effort; anything unparseable just means the fallback is used.
func errorFromBody(body json.RawMessage, status int, fallback string) *Error {
	e := &Error{Message: fallback, Status: status}
	if len(body) == 0 {
		return e
	}

	var probe struct {
		Message json.RawMessage `json:"message"`
		Errors  []FieldError    `json:"errors"`
		Detail  json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return e
	}

	var msg string
	if probe.Message != nil && json.Unmarshal(probe.Message, &msg) == nil && msg != "" {
		e.Message = msg
		e.Fields = probe.Errors
		return e
	}

	if probe.Detail != nil {
		var detail string
		if json.Unmarshal(probe.Detail, &detail) == nil && detail != "" {
			e.Message = detail
			return e
		}

		var items []struct {
			Msg string `json:"msg"`
		}
		if json.Unmarshal(probe.Detail, &items) == nil && len(items) > 0 && items[0].Msg != "" {
			e.Message = items[0].Msg
		}
	}

	return e
}
