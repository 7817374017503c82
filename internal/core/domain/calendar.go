package domain

import (
	"errors"
	"time"
)

// EventType classifies a calendar event.
type EventType string

const (
	EventTypeWork     EventType = "work"
	EventTypeTravel   EventType = "travel"
	EventTypePersonal EventType = "personal"
)

var ErrEventNotFound = errors.New("calendar event not found")

// CalendarEvent is a single entry of a user's calendar. EndTime is expected to
// be after StartTime but this is not enforced.
type CalendarEvent struct {
	ID          int64     `json:"id" bson:"_id"`
	UserID      int64     `json:"userId" bson:"user_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description,omitempty"`
	StartTime   time.Time `json:"startTime" bson:"start_time"`
	EndTime     time.Time `json:"endTime" bson:"end_time"`
	Location    string    `json:"location" bson:"location,omitempty"`
	EventType   EventType `json:"eventType" bson:"event_type"`
	IsConflict  bool      `json:"isConflict" bson:"is_conflict"`
}

// CalendarEventPatch carries a partial update. Nil fields are left untouched.
type CalendarEventPatch struct {
	UserID      *int64
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Location    *string
	EventType   *EventType
	IsConflict  *bool
}

// Apply merges the present fields of p into e.
func (p CalendarEventPatch) Apply(e *CalendarEvent) {
	if p.UserID != nil {
		e.UserID = *p.UserID
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.EventType != nil {
		e.EventType = *p.EventType
	}
	if p.IsConflict != nil {
		e.IsConflict = *p.IsConflict
	}
}

// IsEmpty reports whether the patch carries no field at all.
func (p CalendarEventPatch) IsEmpty() bool {
	return p == CalendarEventPatch{}
}
