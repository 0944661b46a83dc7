package constants

const (
	// Settings keys
	SettingWorkdayStart     = "workday_start"
	SettingWorkdayEnd       = "workday_end"
	SettingSlotStrideMin    = "slot_stride_min"
	SettingBlackoutSlots    = "blackout_slots"
	SettingAvailabilityMode = "availability_mode"

	// Default Settings Values
	DefaultWorkdayStart     = "08:00"
	DefaultWorkdayEnd       = "18:00"
	DefaultSlotStrideMin    = 30
	DefaultAvailabilityMode = "blackout"

	// Draft defaults
	DefaultSessionDurationMin = 60
	DefaultSessionType        = "coaching"
	DefaultSessionLocation    = "office"
	DefaultReminderEnabled    = true
	DefaultReminderLeadHours  = 24
)

// DefaultBlackoutSlots are the slots withheld from availability regardless of bookings.
var DefaultBlackoutSlots = []string{"12:00", "14:30"}
