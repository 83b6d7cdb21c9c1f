package models

import "time"

// Job is a single work-experience entry on an advisor profile.
type Job struct {
	Title     string `bson:"title" json:"title"`
	Company   string `bson:"company" json:"company"`
	StartYear int    `bson:"startYear,omitempty" json:"startYear,omitempty"`
	EndYear   int    `bson:"endYear,omitempty" json:"endYear,omitempty"` // zero means current
	Summary   string `bson:"summary,omitempty" json:"summary,omitempty"`
}

// Education is a single education entry on an advisor profile.
type Education struct {
	School    string `bson:"school" json:"school"`
	Degree    string `bson:"degree,omitempty" json:"degree,omitempty"`
	Field     string `bson:"field,omitempty" json:"field,omitempty"`
	StartYear int    `bson:"startYear,omitempty" json:"startYear,omitempty"`
	EndYear   int    `bson:"endYear,omitempty" json:"endYear,omitempty"`
}

// Language pairs a spoken language with a self-reported fluency level.
type Language struct {
	Name    string `bson:"name" json:"name"`
	Fluency string `bson:"fluency" json:"fluency"` // "basic", "conversational", "fluent", "native"
}

// Advisor is a person who sells video sessions. Availability fields are
// stored inline so the document keeps the flat availableTime /
// availableTimezone / availableExceptions layout.
type Advisor struct {
	ID        string `bson:"id" json:"id"`
	Email     string `bson:"email" json:"email"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Headline  string `bson:"headline,omitempty" json:"headline,omitempty"`
	Bio       string `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL  string `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Country   string `bson:"country,omitempty" json:"country,omitempty"`

	Jobs       []Job       `bson:"jobs,omitempty" json:"jobs,omitempty"`
	Educations []Education `bson:"educations,omitempty" json:"educations,omitempty"`
	Languages  []Language  `bson:"languages,omitempty" json:"languages,omitempty"`
	Categories []string    `bson:"categories,omitempty" json:"categories,omitempty"`
	Interests  []string    `bson:"interests,omitempty" json:"interests,omitempty"`

	Availability `bson:",inline"`
	Pricing      Pricing `bson:"pricing" json:"pricing"`

	Rating       float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	SessionCount int     `bson:"sessionCount,omitempty" json:"sessionCount,omitempty"`
	FCMToken     string  `bson:"fcmToken,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AdvisorFilter narrows an advisor search. Zero values mean "any".
type AdvisorFilter struct {
	Query      string   `json:"query,omitempty"      form:"query"`
	Categories []string `json:"categories,omitempty" form:"categories"`
	Languages  []string `json:"languages,omitempty"  form:"languages"`
	Country    string   `json:"country,omitempty"    form:"country"`
	MinPrice   float64  `json:"minPrice,omitempty"   form:"minPrice"` // per 15-minute unit
	MaxPrice   float64  `json:"maxPrice,omitempty"   form:"maxPrice"`
	Limit      int      `json:"limit,omitempty"      form:"limit"`
}
