package storage

import "errors"

var ErrNotFound = errors.New("item not found in storage")
var ErrDuplicateVote = errors.New("spectator already voted for this team")
