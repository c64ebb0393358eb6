package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// GrievanceCategory is a custom type for our category ENUM
type GrievanceCategory string

const (
	CategoryRoads       GrievanceCategory = "Roads"
	CategoryElectricity GrievanceCategory = "Electricity"
	CategoryWater       GrievanceCategory = "Water"
	CategorySanitation  GrievanceCategory = "Sanitation"
	CategoryCorruption  GrievanceCategory = "Corruption"
	CategoryOther       GrievanceCategory = "Other"
)

// GrievanceStatus is a custom type for our status ENUM
type GrievanceStatus string

const (
	StatusSubmitted GrievanceStatus = "Submitted"
	StatusInReview  GrievanceStatus = "In Review"
	StatusAssigned  GrievanceStatus = "Assigned"
	StatusResolved  GrievanceStatus = "Resolved"
)

const (
	// DateLayout is how submission and update dates are rendered.
	DateLayout = "2006-01-02"

	// DefaultLocation replaces a blank location on submission.
	DefaultLocation = "Unknown"

	// PlaceholderImageURL replaces a missing image on submission.
	PlaceholderImageURL = "https://picsum.photos/400/300"
)

var ErrUnknownCategory = errors.New("unknown grievance category")

// Categories returns every category in display order.
func Categories() []GrievanceCategory {
	return []GrievanceCategory{
		CategoryRoads,
		CategoryElectricity,
		CategoryWater,
		CategorySanitation,
		CategoryCorruption,
		CategoryOther,
	}
}

// Statuses returns every status in lifecycle order.
func Statuses() []GrievanceStatus {
	return []GrievanceStatus{StatusSubmitted, StatusInReview, StatusAssigned, StatusResolved}
}

// ParseCategory matches a category by name, ignoring case.
func ParseCategory(s string) (GrievanceCategory, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// ParseStatus matches a status by name, ignoring case.
func ParseStatus(s string) (GrievanceStatus, bool) {
	for _, st := range Statuses() {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}

// GrievanceUpdate is one entry in a grievance's history.
type GrievanceUpdate struct {
	Date        string
	Title       string
	Description string
	Author      string // e.g. "System", "Junior Engineer"
}

// Grievance is a citizen-submitted issue report.
// Updates is never empty and only ever grows at the end.
type Grievance struct {
	ID            string
	Title         string
	Description   string
	Category      GrievanceCategory
	Location      string
	Status        GrievanceStatus
	DateSubmitted string
	ImageURL      *string // Telegram FileID or URL
	IsAnonymous   bool
	Updates       []GrievanceUpdate
}

// LatestUpdate returns the most recent history entry.
func (g *Grievance) LatestUpdate() GrievanceUpdate {
	return g.Updates[len(g.Updates)-1]
}

// Submission is the citizen-provided part of a new grievance.
type Submission struct {
	Category    GrievanceCategory
	Description string
	Location    string
	ImageURL    string
	IsAnonymous bool
}

// Validate checks the fields a grievance cannot be created without.
func (s Submission) Validate() error {
	if _, err := ParseCategory(string(s.Category)); err != nil {
		return err
	}
	if strings.TrimSpace(s.Description) == "" {
		return errors.New("description is required")
	}
	return nil
}

// NewGrievance builds a freshly submitted grievance from a validated submission.
func NewGrievance(id string, s Submission, now time.Time) *Grievance {
	date := now.Format(DateLayout)

	location := strings.TrimSpace(s.Location)
	if location == "" {
		location = DefaultLocation
	}
	image := s.ImageURL
	if image == "" {
		image = PlaceholderImageURL
	}

	return &Grievance{
		ID:            id,
		Title:         fmt.Sprintf("%s Issue", s.Category),
		Description:   strings.TrimSpace(s.Description),
		Category:      s.Category,
		Location:      location,
		Status:        StatusSubmitted,
		DateSubmitted: date,
		ImageURL:      &image,
		IsAnonymous:   s.IsAnonymous,
		Updates: []GrievanceUpdate{
			{Date: date, Title: "Submitted", Description: "Received by system", Author: "System"},
		},
	}
}

// FormatGrievanceID renders an ID as GR-<year>-<4 digits>.
func FormatGrievanceID(year, n int) string {
	return fmt.Sprintf("GR-%d-%04d", year, n)
}
