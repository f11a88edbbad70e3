package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientBalance indicates a debit larger than the remaining days of its pool.
var ErrInsufficientBalance = errors.New("insufficient leave balance")

// ErrBalanceChanged indicates the stored balance moved between read and write of a debit.
var ErrBalanceChanged = errors.New("balance changed concurrently")

// ErrStoreUnavailable indicates the backing store could not be reached.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrAuthentication indicates bad or missing credentials.
var ErrAuthentication = errors.New("authentication failed")

// ErrForbidden indicates the caller lacks the capability for the action.
var ErrForbidden = errors.New("forbidden")
