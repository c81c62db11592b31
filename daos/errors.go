package daos

import "errors"

// Domain errors raised by the DAOs. The HTTP layer owns the mapping to
// status codes; nothing in this package knows about HTTP.
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product model already exists")
	ErrLowProductStock      = errors.New("insufficient product stock")

	ErrCartNotFound      = errors.New("cart not found")
	ErrCartAlreadyExists = errors.New("user already has an unpaid cart")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrProductNotInCart  = errors.New("product not in cart")

	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this user and model")

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("username already taken")
	ErrBadCredentials    = errors.New("incorrect username or password")
	ErrUnauthorizedUser  = errors.New("operation not allowed for this user")

	// ErrInvalidInput covers malformed or mutually inconsistent request data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDateOrder covers chronological ordering violations (e.g. a selling
	// date before the arrival date, or any date in the future).
	ErrDateOrder = errors.New("date ordering violation")
)
