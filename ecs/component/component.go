package component

import "errors"

// None is returned by index queries that found nothing.
const None = -1

var (
	ErrUnknownCategory = errors.New("component: unknown tile category")
	ErrUnknownBehavior = errors.New("component: unknown behavior")
	ErrMalformedLine   = errors.New("component: malformed tile line")
)
