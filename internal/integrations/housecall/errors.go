package housecall

import "errors"

var (
	// ErrLeadsUnsupported is returned when the CRM plan has
	// no leads capability; callers degrade to AddNote.
	ErrLeadsUnsupported = errors.New("housecall: leads endpoint unavailable")
)
