package models

import "time"

// DateLayout is the calendar date format used for activity dates
const DateLayout = "2006-01-02"

// ActivityType discriminates the activity variants stored in one collection
type ActivityType string

const (
	ActivityCultural ActivityType = "cultural"
	ActivityRaffle   ActivityType = "raffle"
)

// Valid reports whether the type is a known variant
func (t ActivityType) Valid() bool {
	return t == ActivityCultural || t == ActivityRaffle
}

// ActivityStatus is the lifecycle state of an activity
type ActivityStatus string

const (
	// StatusScheduled applies to cultural activities
	StatusScheduled ActivityStatus = "scheduled"
	// StatusActive applies to raffles that have not been drawn
	StatusActive ActivityStatus = "active"
	// StatusCompleted applies to both variants
	StatusCompleted ActivityStatus = "completed"
)

// DefaultStatus returns the status a new activity of this type starts in
func (t ActivityType) DefaultStatus() ActivityStatus {
	if t == ActivityRaffle {
		return StatusActive
	}
	return StatusScheduled
}

// AllowsStatus reports whether status is legal for the variant
func (t ActivityType) AllowsStatus(status ActivityStatus) bool {
	switch t {
	case ActivityCultural:
		return status == StatusScheduled || status == StatusCompleted
	case ActivityRaffle:
		return status == StatusActive || status == StatusCompleted
	}
	return false
}

// Activity is the stored row shape shared by cultural activities and raffles
type Activity struct {
	ID           string         `bson:"_id,omitempty" json:"id"`
	Type         ActivityType   `bson:"type" json:"type"`
	Title        string         `bson:"title" json:"title"`
	Date         string         `bson:"date" json:"date"`
	Participants []string       `bson:"participants" json:"participants"`
	Status       ActivityStatus `bson:"status" json:"status"`

	// cultural
	Time        string `bson:"time,omitempty" json:"time,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	// raffle
	Prize    string  `bson:"prize,omitempty" json:"prize,omitempty"`
	WinnerID *string `bson:"winner_id,omitempty" json:"winner_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsRaffle reports whether the activity is a raffle
func (a Activity) IsRaffle() bool {
	return a.Type == ActivityRaffle
}

// Day parses the activity date. Malformed dates return false.
func (a Activity) Day() (time.Time, bool) {
	day, err := time.Parse(DateLayout, a.Date)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// HasParticipant reports whether id is enrolled
func (a Activity) HasParticipant(id string) bool {
	for _, p := range a.Participants {
		if p == id {
			return true
		}
	}
	return false
}

// CulturalActivity is the cultural view of an activity
type CulturalActivity struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Date         string         `json:"date"`
	Time         string         `json:"time"`
	Location     string         `json:"location"`
	Description  string         `json:"description"`
	Participants []string       `json:"participants"`
	Status       ActivityStatus `json:"status"`
}

// Raffle is the raffle view of an activity
type Raffle struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Prize        string         `json:"prize"`
	Date         string         `json:"date"`
	Participants []string       `json:"participants"`
	Status       ActivityStatus `json:"status"`
	WinnerID     *string        `json:"winner_id"`
}

// Cultural returns the cultural view
func (a Activity) Cultural() CulturalActivity {
	return CulturalActivity{
		ID:           a.ID,
		Title:        a.Title,
		Date:         a.Date,
		Time:         a.Time,
		Location:     a.Location,
		Description:  a.Description,
		Participants: a.Participants,
		Status:       a.Status,
	}
}

// Raffle returns the raffle view
func (a Activity) Raffle() Raffle {
	return Raffle{
		ID:           a.ID,
		Title:        a.Title,
		Prize:        a.Prize,
		Date:         a.Date,
		Participants: a.Participants,
		Status:       a.Status,
		WinnerID:     a.WinnerID,
	}
}

// ActivityForm is the variant-agnostic editable subset of an activity
type ActivityForm struct {
	Title        string         `json:"title"`
	Date         string         `json:"date" example:"2025-07-15"`
	Time         string         `json:"time,omitempty" example:"10:00"`
	Location     string         `json:"location,omitempty"`
	Description  string         `json:"description,omitempty"`
	Prize        string         `json:"prize,omitempty"`
	Participants []string       `json:"participants"`
	Status       ActivityStatus `json:"status,omitempty"`
}

// CulturalActivityForm is the input for a cultural activity
type CulturalActivityForm struct {
	Title        string         `json:"title" example:"Taller de pintura"`
	Date         string         `json:"date" example:"2025-07-15"`
	Time         string         `json:"time" example:"10:00"`
	Location     string         `json:"location" example:"Casa de la Cultura"`
	Description  string         `json:"description"`
	Participants []string       `json:"participants"`
	Status       ActivityStatus `json:"status,omitempty" enums:"scheduled,completed"`
}

// ActivityForm converts to the variant-agnostic form
func (f CulturalActivityForm) ActivityForm() ActivityForm {
	return ActivityForm{
		Title:        f.Title,
		Date:         f.Date,
		Time:         f.Time,
		Location:     f.Location,
		Description:  f.Description,
		Participants: f.Participants,
		Status:       f.Status,
	}
}

// RaffleForm is the input for a raffle
type RaffleForm struct {
	Title        string   `json:"title" example:"Rifa de fin de mes"`
	Prize        string   `json:"prize" example:"Cesta de alimentos"`
	Date         string   `json:"date" example:"2025-07-30"`
	Participants []string `json:"participants"`
}

// ActivityForm converts to the variant-agnostic form
func (f RaffleForm) ActivityForm() ActivityForm {
	return ActivityForm{
		Title:        f.Title,
		Prize:        f.Prize,
		Date:         f.Date,
		Participants: f.Participants,
	}
}

// Activity builds the row for the given variant. Fields belonging to the
// other variant are dropped.
func (f ActivityForm) Activity(kind ActivityType) Activity {
	a := Activity{
		Type:         kind,
		Title:        f.Title,
		Date:         f.Date,
		Participants: nonNil(f.Participants),
		Status:       f.Status,
	}
	switch kind {
	case ActivityCultural:
		a.Time = f.Time
		a.Location = f.Location
		a.Description = f.Description
	case ActivityRaffle:
		a.Prize = f.Prize
	}
	return a
}
