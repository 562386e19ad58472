package cart

// CeilingError is a guard rejection on the quantity ceiling: non-fatal,
// carried on state until the caller clears it.
type CeilingError struct {
	Message string
}

func (e *CeilingError) Error() string { return e.Message }
