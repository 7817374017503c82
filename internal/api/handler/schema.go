package handler

import (
	"time"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

// --- Request types ---
//
// userId is never read from a body: records belong to the request identity.

type calendarEventRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description"`
	StartTime   *time.Time `json:"startTime"   validate:"required"`
	EndTime     *time.Time `json:"endTime"     validate:"required"`
	Location    string     `json:"location"`
	EventType   string     `json:"eventType"   validate:"required,oneof=work travel personal"`
	IsConflict  bool       `json:"isConflict"`
}

func (r calendarEventRequest) toDomain(userID int64) *domain.CalendarEvent {
	return &domain.CalendarEvent{
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime.UTC(),
		EndTime:     r.EndTime.UTC(),
		Location:    r.Location,
		EventType:   domain.EventType(r.EventType),
		IsConflict:  r.IsConflict,
	}
}

type calendarEventPatchRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Location    *string    `json:"location"`
	EventType   *string    `json:"eventType"   validate:"omitempty,oneof=work travel personal"`
	IsConflict  *bool      `json:"isConflict"`
}

func (r calendarEventPatchRequest) toDomain() domain.CalendarEventPatch {
	p := domain.CalendarEventPatch{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		IsConflict:  r.IsConflict,
	}
	if r.StartTime != nil {
		t := r.StartTime.UTC()
		p.StartTime = &t
	}
	if r.EndTime != nil {
		t := r.EndTime.UTC()
		p.EndTime = &t
	}
	if r.EventType != nil {
		et := domain.EventType(*r.EventType)
		p.EventType = &et
	}
	return p
}

type coworkingSpaceRequest struct {
	Name          string   `json:"name"     validate:"required"`
	Location      string   `json:"location" validate:"required"`
	Price         string   `json:"price"`
	Rating        string   `json:"rating"`
	Amenities     []string `json:"amenities"`
	InternetSpeed string   `json:"internetSpeed"`
}

func (r coworkingSpaceRequest) toDomain(userID int64) *domain.CoworkingSpace {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &domain.CoworkingSpace{
		UserID:        userID,
		Name:          r.Name,
		Location:      r.Location,
		Price:         r.Price,
		Rating:        r.Rating,
		Amenities:     amenities,
		InternetSpeed: r.InternetSpeed,
	}
}

type budgetEntryRequest struct {
	Amount        *int64     `json:"amount"   validate:"required"`
	Category      string     `json:"category" validate:"required"`
	Description   string     `json:"description"`
	Date          *time.Time `json:"date"     validate:"required"`
	IsWorkRelated bool       `json:"isWorkRelated"`
}

func (r budgetEntryRequest) toDomain(userID int64) *domain.BudgetEntry {
	return &domain.BudgetEntry{
		UserID:        userID,
		Amount:        *r.Amount,
		Category:      r.Category,
		Description:   r.Description,
		Date:          r.Date.UTC(),
		IsWorkRelated: r.IsWorkRelated,
	}
}

type budgetEntryPatchRequest struct {
	Amount        *int64     `json:"amount"`
	Category      *string    `json:"category" validate:"omitempty,min=1"`
	Description   *string    `json:"description"`
	Date          *time.Time `json:"date"`
	IsWorkRelated *bool      `json:"isWorkRelated"`
}

func (r budgetEntryPatchRequest) toDomain() domain.BudgetEntryPatch {
	p := domain.BudgetEntryPatch{
		Amount:        r.Amount,
		Category:      r.Category,
		Description:   r.Description,
		IsWorkRelated: r.IsWorkRelated,
	}
	if r.Date != nil {
		t := r.Date.UTC()
		p.Date = &t
	}
	return p
}

type workWindowRequest struct {
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end"   validate:"required,datetime=15:04"`
}

type dateRangeRequest struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end"   validate:"required,datetime=2006-01-02"`
}

type preferencesRequest struct {
	TimeZone             *string                      `json:"timeZone"`
	BudgetLimit          *int64                       `json:"budgetLimit"          validate:"omitempty,gte=0"`
	PreferredWorkHours   map[string]workWindowRequest `json:"preferredWorkHours"   validate:"omitempty,dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys"`
	NextDestination      *string                      `json:"nextDestination"`
	NextDestinationDates *dateRangeRequest            `json:"nextDestinationDates"`
}

func (r preferencesRequest) toDomain() domain.PreferencesPatch {
	p := domain.PreferencesPatch{
		TimeZone:        r.TimeZone,
		BudgetLimit:     r.BudgetLimit,
		NextDestination: r.NextDestination,
	}
	if r.PreferredWorkHours != nil {
		p.PreferredWorkHours = make(domain.WorkHours, len(r.PreferredWorkHours))
		for day, w := range r.PreferredWorkHours {
			p.PreferredWorkHours[day] = domain.WorkWindow{Start: w.Start, End: w.End}
		}
	}
	if r.NextDestinationDates != nil {
		p.NextDestinationDates = &domain.DateRange{
			Start: r.NextDestinationDates.Start,
			End:   r.NextDestinationDates.End,
		}
	}
	return p
}

type registerRequest struct {
	Username        string `json:"username"        validate:"required"`
	Password        string `json:"password"        validate:"required,min=6"`
	FullName        string `json:"fullName"        validate:"required"`
	CurrentLocation string `json:"currentLocation"`
	ProfileImage    string `json:"profileImage"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type assistantRequest struct {
	Query string `json:"query" validate:"required"`
}

// --- Response types ---

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type deleteResponse struct {
	Success bool `json:"success"`
}
