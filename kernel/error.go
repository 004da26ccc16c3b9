package kernel

// Error describes a fatal per-CPU setup error. All errors must be defined as
// global variables that are pointers to the Error structure; per-CPU setup
// runs before the Go allocator can be relied upon so errors.New is off limits.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
