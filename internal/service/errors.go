package service

import "errors"

var (
	// ErrUpstream is returned when the upstream site could not be fetched
	ErrUpstream = errors.New("upstream fetch failed")

	// ErrParse is returned when a fetched page lacks the fields every layout carries
	ErrParse = errors.New("upstream page could not be parsed")

	// ErrInvalidID is returned for malformed novel or chapter identifiers
	ErrInvalidID = errors.New("invalid identifier")
)
