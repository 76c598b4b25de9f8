package model

import "errors"

// ErrDataUnavailable marks a ticker whose price series was empty or unusable.
var ErrDataUnavailable = errors.New("data unavailable")

// ErrFetchFailed marks a transport or lookup failure in an upstream provider.
var ErrFetchFailed = errors.New("fetch failed")
