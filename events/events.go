// Package events holds diagnostic messages produced while a plan is validated or calculated.
// Events are data for the caller to present, not failures of the calculation.
package events

import (
	"fmt"
	"time"
)

type Type int

const (
	Error Type = iota + 1
	LowPpO2
	HighPpO2
	HighEND
	GasSwitch
	NotEnoughGas
	NotEnoughTime
)

func (t Type) String() string {
	switch t {
	case Error:
		return "error"
	case LowPpO2:
		return "lowPpO2"
	case HighPpO2:
		return "highPpO2"
	case HighEND:
		return "highEND"
	case GasSwitch:
		return "gasSwitch"
	case NotEnoughGas:
		return "notEnoughGas"
	case NotEnoughTime:
		return "notEnoughTime"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

type Event struct {
	Type    Type
	Message string
	Depth   float64       // m
	Time    time.Duration // from start of the dive
	GasName string        // only for gas related events
}

func NewError(message string) Event {
	return Event{Type: Error, Message: message}
}

func New(t Type, timeStamp time.Duration, depth float64, message string) Event {
	return Event{
		Type:    t,
		Message: message,
		Depth:   depth,
		Time:    timeStamp,
	}
}

func (e Event) WithGas(name string) Event {
	e.GasName = name
	return e
}

func (e Event) IsError() bool {
	return e.Type == Error
}

// HasErrors reports, if any of the events prevents the plan from being calculated.
func HasErrors(list []Event) bool {
	for _, e := range list {
		if e.IsError() {
			return true
		}
	}
	return false
}
