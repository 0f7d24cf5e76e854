package player

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("episode index out of range")
	ErrSessionNotFound = errors.New("player session not found")
	ErrInvalidSession  = errors.New("invalid player session id")
)

// IndexError reports a PlayList call whose index does not address the list
type IndexError struct {
	Index  int
	Length int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("episode index %d out of range for playlist of %d", e.Index, e.Length)
}

func (e IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
