package booking

// ValidationError signals that a submitted payload failed the trip-type
// dependent required-field rules. It maps to a 400 response.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
