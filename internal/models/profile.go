package models

import "time"

// DefaultName and DefaultGoal fill in missing profile fields on read; the
// onboarding writer is outside the core and the stored shape is not trusted.
const (
	DefaultName = "Friend"
	DefaultGoal = "Better wellbeing"
)

// WellnessGoals are the preset goals offered during onboarding. A profile may
// also carry free-text custom goals.
var WellnessGoals = []string{
	"Reduce stress & anxiety",
	"Improve mood stability",
	"Build healthy habits",
	"Better sleep quality",
	"Increase self-awareness",
}

// UserProfile is created once during onboarding and replaced wholesale or
// destroyed by the clear-all-data flow. One profile per installation.
type UserProfile struct {
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Goal      string    `json:"goal"`
	CreatedAt time.Time `json:"createdAt"`
}

// WithDefaults returns a copy with blank fields replaced by defaults.
func (p UserProfile) WithDefaults() UserProfile {
	if p.Name == "" {
		p.Name = DefaultName
	}
	if p.Goal == "" {
		p.Goal = DefaultGoal
	}
	return p
}
