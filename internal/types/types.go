package types

// Part is one content part of a conversation turn. Only text parts are
// meaningful to this backend; the struct exists so turns round-trip to the
// provider without reshaping.
type Part struct {
	Text string `json:"text"`
}

// Turn is a single entry of the conversation history as the frontend sends
// it: a role plus ordered content parts. The backend forwards turns verbatim
// and never reorders, truncates, or mutates them.
type Turn struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type GenerateRequest struct {
	History []Turn `json:"history"`
	Mode    string `json:"mode,omitempty"`
	// Legacy request shape from before string modes existed:
	// true selects the tutor preset, false the assistant preset.
	// A non-empty Mode supersedes this flag.
	TutorMode *bool `json:"tutor_mode,omitempty"`
}

type GenerateResponse struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
