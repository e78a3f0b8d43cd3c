package client

import "chirp"

// ParseLoginReply maps the server's login reply string to a status.
func ParseLoginReply(msg string) chirp.Status {
	if msg == chirp.MsgLoginInvalid {
		return chirp.AlreadyExists
	}
	return chirp.Success
}

// ParseFollowReply maps the server's follow reply string to a status.
func ParseFollowReply(msg string) chirp.Status {
	switch msg {
	case chirp.MsgFollowOK:
		return chirp.Success
	case chirp.MsgFollowInvalid:
		return chirp.InvalidUsername
	case chirp.MsgFollowDuplicate:
		return chirp.AlreadyExists
	default:
		return chirp.FailureUnknown
	}
}

// ParseUnfollowReply maps the server's unfollow reply string to a status.
func ParseUnfollowReply(msg string) chirp.Status {
	switch msg {
	case chirp.MsgUnfollowOK:
		return chirp.Success
	case chirp.MsgUnfollowInvalid, chirp.MsgUnfollowNotFound:
		return chirp.InvalidUsername
	default:
		return chirp.FailureUnknown
	}
}
