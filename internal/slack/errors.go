package slack

import "errors"

var (
	// ErrChannelInfo indicates the channel membership lookup failed.
	ErrChannelInfo = errors.New("channel info lookup failed")
	// ErrMembersList indicates the user directory lookup failed.
	ErrMembersList = errors.New("members list lookup failed")
)
