// Package containers extracts the raw symbols and samples the encoders work on
// from uploaded files.
//
// Anything that can't be decoded is reported with
// [errors.ErrUnsupportedContainer] wrapping the underlying cause.
package containers
