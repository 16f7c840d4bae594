// Copyright (c) 2019-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrCostTooHigh indicates a cost larger than the number of bits in a
	// digest, which can never be satisfied.
	ErrCostTooHigh = ErrorKind("ErrCostTooHigh")

	// ErrInsufficientWork indicates the digest of a nonce and payload does
	// not have as many leading zero bits as the required cost.
	ErrInsufficientWork = ErrorKind("ErrInsufficientWork")

	// ErrNonceSize indicates a byte slice of the wrong length was provided
	// as a nonce.
	ErrNonceSize = ErrorKind("ErrNonceSize")

	// ErrNonceStrSize indicates a nonce string that does not encode exactly
	// NonceSize bytes.
	ErrNonceStrSize = ErrorKind("ErrNonceStrSize")

	// ErrUnknownHashFunc indicates a hash function name that is not
	// supported.
	ErrUnknownHashFunc = ErrorKind("ErrUnknownHashFunc")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to proof of work handling.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Description string
	Err         error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
