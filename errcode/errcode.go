package errcode

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Motor command outside [-100, 100]. The only runtime error of the HAL.
	BadSpeed Code = "bad_speed"

	// Configuration (pin map / platform) errors.
	InvalidParams Code = "invalid_params"
	UnknownPin    Code = "unknown_pin"
	PinInUse      Code = "pin_in_use"
	Unsupported   Code = "unsupported"

	Error Code = "error" // generic fallback
)

// E keeps context and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap builds an *E for op with code c. The code doubles as the cause so
// errors.Is(err, c) matches.
func Wrap(c Code, op, msg string) *E {
	return &E{C: c, Op: op, Msg: msg, Err: c}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
