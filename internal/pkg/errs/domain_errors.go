package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers. Handlers map
// them to responses with errors.Is; the three groups mirror the error
// taxonomy: not-found, domain-rule violation, opaque dependency failure.
var (
	// Not found
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")

	// Validation
	ErrItemUnavailable      = errors.New("item is not available for booking")
	ErrNotItemOwner         = errors.New("user is not the owner of the item")
	ErrAlreadyDecided       = errors.New("booking is already approved or rejected")
	ErrNotEligibleToComment = errors.New("user has no finished booking of the item")
	ErrDuplicateEmail       = errors.New("email is already in use")

	// Dependency failure; storage errors are marked, never reinterpreted
	ErrStorageFailure = errors.New("storage operation failed")
)
