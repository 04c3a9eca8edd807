package domain

import "errors"

var (
	// ErrUsernameRequired is returned when a request omits the username.
	ErrUsernameRequired = errors.New("username is required")
	// ErrEmptySession is returned when a session carries no answer payload.
	ErrEmptySession = errors.New("session contains no questions or answers")
)
