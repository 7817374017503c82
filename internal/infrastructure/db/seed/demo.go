// Package seed writes the demo account and its sample records through the
// record store ports, so it works against every backend.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nomadplanner/planner-api/internal/core/domain"
	"github.com/nomadplanner/planner-api/internal/core/ports"
)

const (
	DemoUsername = "alexmorgan"
	DemoPassword = "password123"

	demoTimeZone = "Asia/Kolkata"
)

// ist is used when the tz database is not available in the container.
var ist = time.FixedZone("IST", 5*60*60+30*60)

// Demo seeds the demo user unless an account with DemoUsername exists, and
// returns its id. Dates are laid out around anchor: the first batch of events
// falls on anchor's day, the Goa trip a month later.
func Demo(ctx context.Context, repos ports.Repositories, anchor time.Time, log zerolog.Logger) (int64, error) {
	existing, err := repos.Users.FindByUsername(ctx, DemoUsername)
	if err == nil {
		log.Debug().Int64("user_id", existing.ID).Msg("demo user already present, skipping seed")
		return existing.ID, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return 0, fmt.Errorf("seed: find demo user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("seed: hash password: %w", err)
	}
	user, err := repos.Users.Create(ctx, &domain.User{
		Username:        DemoUsername,
		PasswordHash:    string(hash),
		FullName:        "Alex Morgan",
		CurrentLocation: "Bangalore, India",
		ProfileImage:    "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?ixlib=rb-1.2.1&auto=format&fit=crop&w=128&q=80",
	})
	if err != nil {
		return 0, fmt.Errorf("seed: create demo user: %w", err)
	}
	uid := user.ID

	loc, err := time.LoadLocation(demoTimeZone)
	if err != nil {
		loc = ist
	}
	a := anchor.In(loc)
	day := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, loc)
	trip := day.AddDate(0, 0, 31)
	at := func(d time.Time, hour, minute int) time.Time {
		return d.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	limit := int64(2500)
	tz := demoTimeZone
	dest := "Goa, India"
	weekday := domain.WorkWindow{Start: "09:00", End: "17:00"}
	if _, err := repos.Preferences.Upsert(ctx, uid, domain.PreferencesPatch{
		TimeZone:    &tz,
		BudgetLimit: &limit,
		PreferredWorkHours: domain.WorkHours{
			"monday":    weekday,
			"tuesday":   weekday,
			"wednesday": weekday,
			"thursday":  weekday,
			"friday":    {Start: "09:00", End: "13:00"},
		},
		NextDestination: &dest,
		NextDestinationDates: &domain.DateRange{
			Start: trip.Format(time.DateOnly),
			End:   day.AddDate(0, 0, 97).Format(time.DateOnly),
		},
	}); err != nil {
		return 0, fmt.Errorf("seed: preferences: %w", err)
	}

	events := []domain.CalendarEvent{
		{Title: "Team Weekly Sync", Description: "Regular team meeting", StartTime: at(day, 9, 0), EndTime: at(day, 10, 0), Location: "Zoom", EventType: domain.EventTypeWork},
		{Title: "Train to Mumbai", Description: "Business trip to Mumbai", StartTime: at(day, 13, 0), EndTime: at(day, 17, 30), Location: "Bangalore City Railway Station", EventType: domain.EventTypeTravel},
		{Title: "Client Presentation", Description: "Present design concepts to client", StartTime: at(day, 17, 0), EndTime: at(day, 18, 0), Location: "Google Meet", EventType: domain.EventTypeWork},
		{Title: "Team Meeting", Description: "Weekly team sync with US team", StartTime: at(trip, 20, 0), EndTime: at(trip, 21, 0), Location: "Zoom", EventType: domain.EventTypeWork, IsConflict: true},
		{Title: "Flight to Goa", Description: "Weekend getaway", StartTime: at(trip, 17, 0), EndTime: at(trip, 19, 0), Location: "Bangalore Airport (BLR) to Goa Airport (GOI)", EventType: domain.EventTypeTravel, IsConflict: true},
	}
	for i := range events {
		events[i].UserID = uid
		events[i].StartTime = events[i].StartTime.UTC()
		events[i].EndTime = events[i].EndTime.UTC()
		if _, err := repos.Calendar.Create(ctx, &events[i]); err != nil {
			return 0, fmt.Errorf("seed: calendar event %q: %w", events[i].Title, err)
		}
	}

	spaces := []domain.CoworkingSpace{
		{Name: "WeWork Galaxy", Location: "Residency Road, Bangalore", Price: "₹800/day", Rating: "4.6", Amenities: []string{"Fast WiFi", "Meeting Rooms", "Cafe", "24/7 Access"}, InternetSpeed: "300 Mbps"},
		{Name: "91springboard", Location: "Koramangala, Bangalore", Price: "₹650/day", Rating: "4.5", Amenities: []string{"200mbps", "Standing desks", "Game Room", "Events"}, InternetSpeed: "200 Mbps"},
	}
	for i := range spaces {
		spaces[i].UserID = uid
		if _, err := repos.Coworking.Create(ctx, &spaces[i]); err != nil {
			return 0, fmt.Errorf("seed: coworking space %q: %w", spaces[i].Name, err)
		}
	}

	month := time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.BudgetEntry{
		{Amount: 600, Category: "accommodation", Description: "Co-living space with work area", IsWorkRelated: true},
		{Amount: 150, Category: "coworking", Description: "Co-working space membership", IsWorkRelated: true},
		{Amount: 450, Category: "food", Description: "Groceries and eating out"},
		{Amount: 200, Category: "transportation", Description: "Local transport and taxis"},
		{Amount: 300, Category: "entertainment", Description: "Activities and outings"},
		{Amount: 50, Category: "internet", Description: "Internet upgrade", IsWorkRelated: true},
		{Amount: 200, Category: "equipment", Description: "New monitor", IsWorkRelated: true},
	}
	for i := range entries {
		entries[i].UserID = uid
		entries[i].Date = month
		if _, err := repos.Budget.Create(ctx, &entries[i]); err != nil {
			return 0, fmt.Errorf("seed: budget entry %q: %w", entries[i].Category, err)
		}
	}

	log.Info().Int64("user_id", uid).Int("events", len(events)).Int("spaces", len(spaces)).Int("entries", len(entries)).Msg("demo data seeded")
	return uid, nil
}
