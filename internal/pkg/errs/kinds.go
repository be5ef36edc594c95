package errs

// Error kinds shared by every layer. Use cases mark domain and infra errors
// with one of these so handlers can map them without knowing the origin.
var (
	ErrValidation  = New("validation failed")
	ErrConflict    = New("conflict")
	ErrGateway     = New("payment gateway failure")
	ErrNotFound    = New("not found")
	ErrForbidden   = New("forbidden")
	ErrUnavailable = New("dependency unavailable")
)

var kinds = []error{ErrValidation, ErrConflict, ErrGateway, ErrNotFound, ErrForbidden, ErrUnavailable}

// KindOf returns the first kind marker carried by err, or nil.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if Is(err, k) {
			return k
		}
	}
	return nil
}

func Validation(err error) error  { return Mark(err, ErrValidation) }
func Conflict(err error) error    { return Mark(err, ErrConflict) }
func Gateway(err error) error     { return Mark(err, ErrGateway) }
func NotFound(err error) error    { return Mark(err, ErrNotFound) }
func Forbidden(err error) error   { return Mark(err, ErrForbidden) }
func Unavailable(err error) error { return Mark(err, ErrUnavailable) }
