package setting

import "time"

// Setting is one row of the flat key/value configuration table.
// Values are stored as strings; callers coerce them and must fall back to a
// safe default when coercion fails.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Well-known setting keys.
const (
	KeyWorkingDaysPerMonth = "working_days_per_month"
	KeyGlobalBonus         = "global_bonus"
	KeyBossEmail           = "boss_email"
)

// DefaultWorkingDaysPerMonth is used when the setting is absent or unparsable.
const DefaultWorkingDaysPerMonth = 22
