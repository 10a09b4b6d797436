package api

// EchoRequest is the body of the echo operation. Input is a pointer so a
// missing field can be distinguished from an explicit empty string, which is
// valid input.
type EchoRequest struct {
	Input *string `json:"input" example:"Hello FastAPI"`
}

// EchoResponse carries the echoed text. Output is always "Echo: " followed by
// the input verbatim.
type EchoResponse struct {
	Output string `json:"output" example:"Echo: Hello FastAPI"`
}

// HealthResponse is returned identically by the health and readiness checks.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
