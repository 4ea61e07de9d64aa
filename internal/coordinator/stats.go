package coordinator

import (
	"sort"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
)

// DefaultUpcomingLimit is the number of upcoming activities shown when no
// limit is given
const DefaultUpcomingLimit = 5

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isUpcoming(a models.Activity, from time.Time) bool {
	if a.Status != models.StatusScheduled && a.Status != models.StatusActive {
		return false
	}
	day, ok := a.Day()
	return ok && !day.Before(from)
}

// FilterBeneficiaries keeps the beneficiaries whose name contains term
// (case-insensitive) or whose national id contains it, and whose status
// passes filter
func FilterBeneficiaries(beneficiaries []models.Beneficiary, term string, filter models.StatusFilter) []models.Beneficiary {
	out := make([]models.Beneficiary, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		matches := containsFold(b.Name, term) || strings.Contains(b.NationalID, term)
		if !matches {
			continue
		}
		if filter != models.FilterAll && filter != "" && string(b.Status) != string(filter) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// ComputeStats aggregates the dashboard counters
func ComputeStats(beneficiaries []models.Beneficiary, activities []models.Activity, now time.Time) models.Stats {
	var stats models.Stats
	stats.TotalElders = len(beneficiaries)
	for _, b := range beneficiaries {
		if b.Status == models.BeneficiaryActive {
			stats.ActiveElders++
		}
		if b.NutritionBeneficiary {
			stats.NutritionBeneficiaries++
		}
		stats.PathologiesCount += len(b.Pathologies)
		stats.DisabilitiesCount += len(b.Disabilities)
	}

	from := today(now)
	for _, a := range activities {
		if isUpcoming(a, from) {
			stats.UpcomingActivities++
		}
	}
	return stats
}

// Stats recomputes the dashboard aggregates from current state
func (c *Coordinator) Stats() models.Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ComputeStats(c.beneficiaries, c.activities, c.now())
}

// FilteredBeneficiaries applies the current search term and status filter
func (c *Coordinator) FilteredBeneficiaries() []models.Beneficiary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return FilterBeneficiaries(c.beneficiaries, c.searchTerm, c.filter)
}

// Beneficiaries returns every beneficiary
func (c *Coordinator) Beneficiaries() []models.Beneficiary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Beneficiary{}, c.beneficiaries...)
}

// Beneficiary returns one beneficiary by id
func (c *Coordinator) Beneficiary(id string) (models.Beneficiary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.findBeneficiary(id)
	if !ok {
		return models.Beneficiary{}, models.ErrBeneficiaryNotFound
	}
	return b, nil
}

// BeneficiariesWithConditions returns the beneficiaries with a recorded
// pathology or disability
func (c *Coordinator) BeneficiariesWithConditions() []models.Beneficiary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []models.Beneficiary{}
	for _, b := range c.beneficiaries {
		if b.HasConditions() {
			out = append(out, b)
		}
	}
	return out
}

// NutritionSplit partitions beneficiaries by nutrition-program membership
func (c *Coordinator) NutritionSplit() models.NutritionView {
	c.mu.RLock()
	defer c.mu.RUnlock()
	view := models.NutritionView{
		Enrolled:    []models.Beneficiary{},
		NotEnrolled: []models.Beneficiary{},
	}
	for _, b := range c.beneficiaries {
		if b.NutritionBeneficiary {
			view.Enrolled = append(view.Enrolled, b)
		} else {
			view.NotEnrolled = append(view.NotEnrolled, b)
		}
	}
	return view
}

// Activities returns the activities of the given kind, or all when kind is empty
func (c *Coordinator) Activities(kind models.ActivityType) []models.Activity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []models.Activity{}
	for _, a := range c.activities {
		if kind == "" || a.Type == kind {
			out = append(out, a)
		}
	}
	return out
}

// Activity returns one activity by id
func (c *Coordinator) Activity(id string) (models.Activity, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.findActivity(id)
	if !ok {
		return models.Activity{}, models.ErrActivityNotFound
	}
	return a, nil
}

// UpcomingActivities returns up to limit scheduled or active activities dated
// today or later, earliest first
func (c *Coordinator) UpcomingActivities(limit int) []models.Activity {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	c.mu.RLock()
	from := today(c.now())
	out := []models.Activity{}
	for _, a := range c.activities {
		if isUpcoming(a, from) {
			out = append(out, a)
		}
	}
	c.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ResolveParticipants maps an activity's participant ids to beneficiaries.
// Ids without a beneficiary are returned with Found false.
func (c *Coordinator) ResolveParticipants(activityID string) ([]models.ParticipantView, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.findActivity(activityID)
	if !ok {
		return nil, models.ErrActivityNotFound
	}

	out := make([]models.ParticipantView, 0, len(a.Participants))
	for _, id := range a.Participants {
		view := models.ParticipantView{ID: id}
		if b, found := c.findBeneficiary(id); found {
			view.Name = b.Name
			view.Found = true
		}
		out = append(out, view)
	}
	return out, nil
}

// PublicLookup finds the first beneficiary whose name or national id
// contains term, with the activities they are enrolled in
func (c *Coordinator) PublicLookup(term string) (models.LookupResult, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return models.LookupResult{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, b := range c.beneficiaries {
		if !containsFold(b.Name, term) && !strings.Contains(b.NationalID, term) {
			continue
		}
		found := b.Public()
		result := models.LookupResult{Beneficiary: &found, Activities: []models.PublicActivity{}}
		for _, a := range c.activities {
			if a.HasParticipant(b.ID) {
				result.Activities = append(result.Activities, a.Public())
			}
		}
		return result, true
	}
	return models.LookupResult{}, false
}

// Calendar groups the activities of a month by day, in date order
func (c *Coordinator) Calendar(year int, month time.Month) []models.CalendarDay {
	c.mu.RLock()
	byDate := map[string][]models.Activity{}
	for _, a := range c.activities {
		day, ok := a.Day()
		if !ok || day.Year() != year || day.Month() != month {
			continue
		}
		byDate[a.Date] = append(byDate[a.Date], a)
	}
	c.mu.RUnlock()

	days := make([]models.CalendarDay, 0, len(byDate))
	for date, activities := range byDate {
		days = append(days, models.CalendarDay{Date: date, Activities: models.PublicActivities(activities)})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
