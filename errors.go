package rete

import "errors"

// ErrInvalidRule is wrapped by compile-time failures: a rule whose action
// isn't a func, whose pattern list is empty, or whose action parameters
// don't line up with its patterns' schemas.
var ErrInvalidRule = errors.New("rete: invalid rule")
