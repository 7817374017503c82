package domain

import (
	"errors"
	"maps"
)

var ErrPreferencesNotFound = errors.New("user preferences not found")

// WorkWindow is a daily working interval in "HH:MM" local time.
type WorkWindow struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

// WorkHours maps a lower-case weekday ("monday") to its working window.
type WorkHours map[string]WorkWindow

// DateRange is an inclusive range of ISO dates ("2025-04-15").
type DateRange struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

// UserPreferences holds per-user settings. There is at most one record per UserID.
type UserPreferences struct {
	ID                   int64      `json:"id" bson:"_id"`
	UserID               int64      `json:"userId" bson:"user_id"`
	TimeZone             string     `json:"timeZone" bson:"time_zone,omitempty"`
	BudgetLimit          *int64     `json:"budgetLimit" bson:"budget_limit,omitempty"`
	PreferredWorkHours   WorkHours  `json:"preferredWorkHours" bson:"preferred_work_hours,omitempty"`
	NextDestination      string     `json:"nextDestination" bson:"next_destination,omitempty"`
	NextDestinationDates *DateRange `json:"nextDestinationDates" bson:"next_destination_dates,omitempty"`
}

// PreferencesPatch is the payload of an upsert. Absent (nil) fields keep the
// stored value when a record already exists.
type PreferencesPatch struct {
	TimeZone             *string
	BudgetLimit          *int64
	PreferredWorkHours   WorkHours
	NextDestination      *string
	NextDestinationDates *DateRange
}

func (p PreferencesPatch) Apply(u *UserPreferences) {
	if p.TimeZone != nil {
		u.TimeZone = *p.TimeZone
	}
	if p.BudgetLimit != nil {
		v := *p.BudgetLimit
		u.BudgetLimit = &v
	}
	if p.PreferredWorkHours != nil {
		u.PreferredWorkHours = maps.Clone(p.PreferredWorkHours)
	}
	if p.NextDestination != nil {
		u.NextDestination = *p.NextDestination
	}
	if p.NextDestinationDates != nil {
		d := *p.NextDestinationDates
		u.NextDestinationDates = &d
	}
}
