package memory

import (
	"maps"
	"slices"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func cloneEvent(e *domain.CalendarEvent) *domain.CalendarEvent {
	c := *e
	return &c
}

func cloneSpace(s *domain.CoworkingSpace) *domain.CoworkingSpace {
	c := *s
	c.Amenities = slices.Clone(s.Amenities)
	if c.Amenities == nil {
		c.Amenities = []string{}
	}
	return &c
}

func cloneEntry(b *domain.BudgetEntry) *domain.BudgetEntry {
	c := *b
	return &c
}

func clonePreferences(p *domain.UserPreferences) *domain.UserPreferences {
	c := *p
	if p.BudgetLimit != nil {
		v := *p.BudgetLimit
		c.BudgetLimit = &v
	}
	c.PreferredWorkHours = maps.Clone(p.PreferredWorkHours)
	if p.NextDestinationDates != nil {
		d := *p.NextDestinationDates
		c.NextDestinationDates = &d
	}
	return &c
}

func cloneConversation(a *domain.AiConversation) *domain.AiConversation {
	c := *a
	c.Messages = slices.Clone(a.Messages)
	if c.Messages == nil {
		c.Messages = []domain.ConversationMessage{}
	}
	return &c
}
