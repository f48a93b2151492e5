package handler

import (
	"net/http"

	"github.com/Astemirdum/review-dashboard/gateway/internal/errs"
	"github.com/pkg/errors"
)

const (
	msgUserTaken     = "This user ID is already taken. Please choose another."
	msgInvalidUserID = "Invalid userId. Please try a different value."
	msgUnknownUser   = "Your user ID does not exist. Please create a new user."
)

type endpointKind uint8

const (
	kindCreateUser endpointKind = iota + 1
	kindSubmitReview
	kindProductRating
	kindCompanyRating
)

func (k endpointKind) failPrefix() string {
	switch k {
	case kindCreateUser:
		return "Failed to create user: "
	case kindSubmitReview:
		return "Failed to submit review: "
	default:
		return "Failed to get average rating: "
	}
}

// translate maps a downstream failure to the caller-facing status and
// message. Downstream codes are never forwarded verbatim: the gateway's
// callers sit on a different trust boundary (a downstream 401 means the
// caller's claimed identity is unknown, not that the gateway itself is
// unauthenticated). Pure function, first match wins.
func translate(kind endpointKind, err error) (int, string) {
	var declared *errs.DeclaredError
	if errors.As(err, &declared) {
		switch {
		case kind == kindCreateUser && declared.Code == http.StatusConflict:
			return http.StatusConflict, msgUserTaken
		case kind == kindCreateUser && declared.Code == http.StatusBadRequest:
			return http.StatusBadRequest, msgInvalidUserID
		case kind != kindCreateUser && declared.Code == http.StatusUnauthorized:
			return http.StatusUnauthorized, msgUnknownUser
		default:
			return http.StatusInternalServerError, kind.failPrefix() + declared.Message
		}
	}
	return http.StatusInternalServerError, kind.failPrefix() + err.Error()
}
