package config

import "fmt"

// StateID identifies an enemy behaviour state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Jump
	WalkLeft
	WalkRight
)

func (s StateID) String() string {
	switch s {
	case StateNone:
		return "none"
	case Idle:
		return "idle"
	case Jump:
		return "jump"
	case WalkLeft:
		return "left"
	case WalkRight:
		return "right"
	}
	return fmt.Sprintf("StateID(%d)", int(s))
}
