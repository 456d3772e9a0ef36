package gerr

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateOperation = errors.New("operation reference already processed")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrPaymentNotApproved = errors.New("payment not approved")
	ErrPaymentLinked      = errors.New("payment already linked")
	ErrUnknownGateway     = errors.New("unknown payment gateway")
	ErrCheckoutNotFound   = errors.New("checkout not found or expired")
	ErrNotFound           = errors.New("not found")
	ErrTooManyRequests    = errors.New("too many requests")

	ErrBadMailRequest      = errors.New("bad mail request")
	ErrMailApiLimitReached = errors.New("mail api limit reached")
)
