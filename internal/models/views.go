package models

import "time"

// NotificationVariant selects how a notification is presented
type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
	VariantSuccess     NotificationVariant = "success"
)

// Notification is a transient user-visible message
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Variant     NotificationVariant `json:"variant"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Stats holds the dashboard aggregates
type Stats struct {
	TotalElders            int `json:"total_elders"`
	ActiveElders           int `json:"active_elders"`
	NutritionBeneficiaries int `json:"nutrition_beneficiaries"`
	UpcomingActivities     int `json:"upcoming_activities"`
	PathologiesCount       int `json:"pathologies_count"`
	DisabilitiesCount      int `json:"disabilities_count"`
}

// ParticipantView resolves a participant id against the beneficiary list
type ParticipantView struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Found bool   `json:"found"`
}

// PublicBeneficiary is the part of a beneficiary shown without a session.
// Health, contact and location data are never included.
type PublicBeneficiary struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	NationalID           string            `json:"national_id"`
	ImageURL             string            `json:"image_url,omitempty"`
	NutritionBeneficiary bool              `json:"nutrition_beneficiary"`
	Status               BeneficiaryStatus `json:"status"`
}

// Public returns the portal view of the beneficiary
func (b Beneficiary) Public() PublicBeneficiary {
	return PublicBeneficiary{
		ID:                   b.ID,
		Name:                 b.Name,
		NationalID:           b.NationalID,
		ImageURL:             b.ImageURL,
		NutritionBeneficiary: b.NutritionBeneficiary,
		Status:               b.Status,
	}
}

// PublicActivity is an activity without its participant list
type PublicActivity struct {
	ID               string         `json:"id"`
	Type             ActivityType   `json:"type"`
	Title            string         `json:"title"`
	Date             string         `json:"date"`
	Time             string         `json:"time,omitempty"`
	Location         string         `json:"location,omitempty"`
	Description      string         `json:"description,omitempty"`
	Prize            string         `json:"prize,omitempty"`
	Status           ActivityStatus `json:"status"`
	ParticipantCount int            `json:"participant_count"`
}

// Public returns the portal view of the activity
func (a Activity) Public() PublicActivity {
	return PublicActivity{
		ID:               a.ID,
		Type:             a.Type,
		Title:            a.Title,
		Date:             a.Date,
		Time:             a.Time,
		Location:         a.Location,
		Description:      a.Description,
		Prize:            a.Prize,
		Status:           a.Status,
		ParticipantCount: len(a.Participants),
	}
}

// PublicActivities maps rows to their portal view
func PublicActivities(rows []Activity) []PublicActivity {
	out := make([]PublicActivity, 0, len(rows))
	for _, a := range rows {
		out = append(out, a.Public())
	}
	return out
}

// LookupResult is the public portal answer for a search term
type LookupResult struct {
	Beneficiary *PublicBeneficiary `json:"beneficiary"`
	Activities  []PublicActivity   `json:"activities"`
}

// CalendarDay groups the activities held on one date
type CalendarDay struct {
	Date       string           `json:"date"`
	Activities []PublicActivity `json:"activities"`
}

// NutritionView splits beneficiaries by nutrition-program membership
type NutritionView struct {
	Enrolled    []Beneficiary `json:"enrolled"`
	NotEnrolled []Beneficiary `json:"not_enrolled"`
}

// StatusFilter narrows the beneficiary list
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterActive   StatusFilter = "active"
	FilterInactive StatusFilter = "inactive"
)

// Valid reports whether the filter is known
func (f StatusFilter) Valid() bool {
	return f == FilterAll || f == FilterActive || f == FilterInactive
}

// View names the active navigation section
type View string

const (
	ViewDashboard     View = "dashboard"
	ViewBeneficiaries View = "elders"
	ViewHealth        View = "health"
	ViewActivities    View = "activities"
	ViewRaffles       View = "raffles"
	ViewNutrition     View = "nutrition"
)

// Valid reports whether the view is known
func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewBeneficiaries, ViewHealth, ViewActivities, ViewRaffles, ViewNutrition:
		return true
	}
	return false
}
