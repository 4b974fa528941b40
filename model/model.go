// Package model holds messages exchanged with clients and stored plans.
package model

import "time"

// Msg is the envelope of all websocket messages, content is JSON of the typed message.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	// requests
	MsgPlan = "plan"
	MsgStop = "stop"
	// replies
	MsgCalculated = "calculated"
	MsgError      = "error"
	MsgStopped    = "stopped"
)

// PlanRequest describes the dive either by segments or as simple plan by depth and duration.
type PlanRequest struct {
	Name     string       `json:"name,omitempty" yaml:"name,omitempty"`
	Tanks    []TankDto    `json:"tanks" yaml:"tanks"`
	Segments []SegmentDto `json:"segments,omitempty" yaml:"segments,omitempty"`
	Depth    float64      `json:"depth,omitempty" yaml:"depth,omitempty"`       // m, simple plan only
	Duration float64      `json:"duration,omitempty" yaml:"duration,omitempty"` // min, simple plan only
	RMV      float64      `json:"rmv,omitempty" yaml:"rmv,omitempty"`           // l/min
	Options  *OptionsDto  `json:"options,omitempty" yaml:"options,omitempty"`
}

// TankDto gas is either standard gas name or O2 and He in percents.
type TankDto struct {
	Size            float64 `json:"size" yaml:"size"`                       // l
	StartPressure   float64 `json:"start_pressure" yaml:"start_pressure"`   // bar
	WorkingPressure float64 `json:"working_pressure,omitempty" yaml:"working_pressure,omitempty"`
	Gas             string  `json:"gas,omitempty" yaml:"gas,omitempty"`
	O2              float64 `json:"o2,omitempty" yaml:"o2,omitempty"`
	He              float64 `json:"he,omitempty" yaml:"he,omitempty"`
}

// SegmentDto without gas breathes gas of its tank, without tank the first tank gas.
type SegmentDto struct {
	StartDepth float64 `json:"start_depth" yaml:"start_depth"` // m
	EndDepth   float64 `json:"end_depth" yaml:"end_depth"`     // m
	Duration   float64 `json:"duration" yaml:"duration"`       // min
	Tank       int     `json:"tank,omitempty" yaml:"tank,omitempty"`
	Gas        string  `json:"gas,omitempty" yaml:"gas,omitempty"`
}

// OptionsDto overrides only the values present. Durations are in minutes.
type OptionsDto struct {
	MaxPpO2                *float64 `json:"max_ppo2,omitempty" yaml:"max_ppo2,omitempty"`
	MaxDecoPpO2            *float64 `json:"max_deco_ppo2,omitempty" yaml:"max_deco_ppo2,omitempty"`
	MaxEND                 *float64 `json:"max_end,omitempty" yaml:"max_end,omitempty"`
	OxygenNarcotic         *bool    `json:"oxygen_narcotic,omitempty" yaml:"oxygen_narcotic,omitempty"`
	ProblemSolvingDuration *float64 `json:"problem_solving_duration,omitempty" yaml:"problem_solving_duration,omitempty"`
	GasSwitchDuration      *float64 `json:"gas_switch_duration,omitempty" yaml:"gas_switch_duration,omitempty"`
	SafetyStop             string   `json:"safety_stop,omitempty" yaml:"safety_stop,omitempty"`
	DecoStopDistance       *float64 `json:"deco_stop_distance,omitempty" yaml:"deco_stop_distance,omitempty"`
	DescentSpeed           *float64 `json:"descent_speed,omitempty" yaml:"descent_speed,omitempty"`
	AscentSpeed50perc      *float64 `json:"ascent_speed_50perc,omitempty" yaml:"ascent_speed_50perc,omitempty"`
	AscentSpeed50percTo6m  *float64 `json:"ascent_speed_50perc_to_6m,omitempty" yaml:"ascent_speed_50perc_to_6m,omitempty"`
	AscentSpeed6m          *float64 `json:"ascent_speed_6m,omitempty" yaml:"ascent_speed_6m,omitempty"`
	Salinity               string   `json:"salinity,omitempty" yaml:"salinity,omitempty"`
	Altitude               *float64 `json:"altitude,omitempty" yaml:"altitude,omitempty"`
}

type PlanResult struct {
	Tanks                []TankResult    `json:"tanks"`
	Profile              []SegmentResult `json:"profile"`
	Events               []EventDto      `json:"events"`
	MaxTime              int             `json:"max_time"`               // min
	TimeToSurface        int             `json:"time_to_surface"`        // min
	EmergencyAscentStart float64         `json:"emergency_ascent_start"` // min
	AverageDepth         float64         `json:"average_depth"`          // m
	Duration             float64         `json:"duration"`               // min
	NotEnoughGas         bool            `json:"not_enough_gas"`
	NotEnoughTime        bool            `json:"not_enough_time"`
	HasErrors            bool            `json:"has_errors"`
}

type TankResult struct {
	ID                int     `json:"id"`
	Label             string  `json:"label"`
	Gas               string  `json:"gas"`
	Size              float64 `json:"size"`
	StartPressure     float64 `json:"start_pressure"`
	EndPressure       float64 `json:"end_pressure"`
	Consumed          float64 `json:"consumed"`
	Reserve           float64 `json:"reserve"`
	PercentsRemaining int     `json:"percents_remaining"`
	PercentsReserve   int     `json:"percents_reserve"`
	HasReserve        bool    `json:"has_reserve"`
}

type SegmentResult struct {
	StartDepth float64 `json:"start_depth"`
	EndDepth   float64 `json:"end_depth"`
	Duration   float64 `json:"duration"` // min
	Gas        string  `json:"gas"`
	Tank       int     `json:"tank,omitempty"`
}

type EventDto struct {
	Type    string  `json:"type"`
	Message string  `json:"message"`
	Depth   float64 `json:"depth"`
	Time    float64 `json:"time"` // min
	Gas     string  `json:"gas,omitempty"`
}

// StoredPlan is one record of the plan library.
type StoredPlan struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Created time.Time   `json:"created"`
	Plan    PlanRequest `json:"plan"`
}
