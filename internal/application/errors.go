package application

import "errors"

var (
	ErrForbidden = errors.New("you are not allowed to do this")

	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrEmailTaken          = errors.New("email already registered")
	ErrReservedAdminUser   = errors.New("the reserved admin account cannot be deleted or demoted")
	ErrFederatedLogin      = errors.New("federated sign-in failed")

	ErrScholarshipNotFound = errors.New("scholarship not found")
	ErrInvalidDeadline     = errors.New("deadline must not be before the post date")
	ErrDeadlinePassed      = errors.New("the application deadline has passed")

	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentRequired = errors.New("a completed, unused payment for this scholarship is required")
	ErrPaymentProvider = errors.New("payment provider unavailable")

	ErrApplicationNotFound     = errors.New("application not found")
	ErrAlreadyApplied          = errors.New("you already have an active application for this scholarship")
	ErrApplicationLocked       = errors.New("application can only be changed while pending")
	ErrInvalidStatus           = errors.New("status must be one of Pending, Processing, Completed, Rejected")
	ErrInvalidStatusTransition = errors.New("status change not allowed")

	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("you already reviewed this scholarship")
	ErrNotApplied      = errors.New("only applicants can review a scholarship")

	ErrImageTooLarge      = errors.New("image is too large")
	ErrInvalidImage       = errors.New("file is not a supported image")
	ErrStorageUnavailable = errors.New("image storage unavailable")
)
