package domain

// Search horizon limits for availability lookups.
const (
	MinSearchDays     = 1
	MaxSearchDays     = 30
	DefaultSearchDays = 7
)

// MinArrivalWindowMinutes floors the derived technician arrival window.
const MinArrivalWindowMinutes = 30

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// DefaultTimezone is the business-local timezone used for hour-of-day
// preference bands when configuration does not override it.
const DefaultTimezone = "America/New_York"

// Default capacity policy. Real deployments tune these in config.toml;
// the defaults keep the mapping total out of the box.
var DefaultCapacityThresholds = CapacityThresholds{
	FeeWaivedMax:      25,
	LimitedSameDayMax: 60,
	NextDayMax:        85,
}
