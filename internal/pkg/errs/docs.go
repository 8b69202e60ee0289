// Package errs provides the typed error family shared by the fulfillment domain.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) with a struct carrying the offending
// parameter and an optional cause:
//
//	err := errs.NewValueIsRequiredError("carrierId")
//	errors.Is(err, errs.ErrValueIsRequired) // true
//
// Constructors come in pairs, with and without a cause. Error() renders the cause
// in parentheses so log lines stay greppable by sentinel text.
package errs
