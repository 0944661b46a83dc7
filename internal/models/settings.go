package models

import "github.com/julianstephens/coachdesk/internal/constants"

type AvailabilityMode string

const (
	// AvailabilityBlackout withholds only the configured blackout slots
	AvailabilityBlackout AvailabilityMode = "blackout"
	// AvailabilityConflictAware also withholds slots taken by booked sessions
	AvailabilityConflictAware AvailabilityMode = "conflict-aware"
)

type Settings struct {
	WorkdayStart     string           `json:"workday_start"` // HH:MM format
	WorkdayEnd       string           `json:"workday_end"`   // HH:MM format
	SlotStrideMin    int              `json:"slot_stride_min"`
	BlackoutSlots    []string         `json:"blackout_slots"`
	AvailabilityMode AvailabilityMode `json:"availability_mode"`
}

// DefaultSettings returns the settings a fresh store is initialized with.
func DefaultSettings() Settings {
	blackout := make([]string, len(constants.DefaultBlackoutSlots))
	copy(blackout, constants.DefaultBlackoutSlots)
	return Settings{
		WorkdayStart:     constants.DefaultWorkdayStart,
		WorkdayEnd:       constants.DefaultWorkdayEnd,
		SlotStrideMin:    constants.DefaultSlotStrideMin,
		BlackoutSlots:    blackout,
		AvailabilityMode: AvailabilityMode(constants.DefaultAvailabilityMode),
	}
}
