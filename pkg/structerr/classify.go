package structerr

import "net/http"

// FromHTTPStatus maps an upstream HTTP status to a structured error.
// The mapping is fixed: 401/403 are operator problems (bad credentials),
// 404 is an absent resource, 422 is rejected input, 5xx is an upstream
// fault, any other 4xx is an upstream client error.
func FromHTTPStatus(status int, msg, correlationID string) *Error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return New(TypeConfiguration, CodeAuth, msg, correlationID)
	case status == http.StatusNotFound:
		return New(TypeNotFound, CodeNotFound, msg, correlationID)
	case status == http.StatusUnprocessableEntity:
		return New(TypeValidation, CodeUnprocessable, msg, correlationID)
	case status >= 500:
		return New(TypeAPIError, CodeUpstream5xx, msg, correlationID)
	case status >= 400:
		return New(TypeAPIError, CodeUpstream4xx, msg, correlationID)
	default:
		return New(TypeUnknown, CodeUnknown, msg, correlationID)
	}
}

// Classify turns an arbitrary error into a structured one. An error that
// already carries a *Error anywhere in its chain is returned unchanged,
// keeping its original correlation id (no double-wrapping). A nil error
// yields nil. Everything else is a transport-level failure from the
// caller's point of view.
func Classify(err error, correlationID string) *Error {
	if err == nil {
		return nil
	}
	if se, ok := As(err); ok {
		return se
	}
	return New(TypeNetwork, CodeTransport, err.Error(), correlationID).WithCause(err)
}

func userMessageFor(t Type) string {
	switch t {
	case TypeConfiguration:
		return "We're having trouble reaching our scheduling system. Please call our office and we'll get you booked right away."
	case TypeValidation:
		return "Some of the information provided doesn't look right. Could you double-check it and try again?"
	case TypeAPIError, TypeNetwork:
		return "Our scheduling system is temporarily unavailable. Please try again in a moment or call our office."
	case TypeNotFound:
		return "We couldn't find that record. Please double-check the details or call our office."
	case TypeBusinessLogic:
		return "We couldn't complete that request with the options available. Our team can help you over the phone."
	default:
		return "Something unexpected went wrong on our end. Please call our office and we'll take care of you."
	}
}
