package models

import "time"

// Roles a person can pick during onboarding. A seeker who later sets up an
// advisor profile keeps the same account id in both collections.
const (
	RoleSeeker  = "seeker"
	RoleAdvisor = "advisor"
)

// Seeker is someone who books sessions with advisors.
type Seeker struct {
	ID        string   `bson:"id" json:"id"`
	Email     string   `bson:"email" json:"email"`
	FirstName string   `bson:"firstName" json:"firstName"`
	LastName  string   `bson:"lastName" json:"lastName"`
	PhotoURL  string   `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Country   string   `bson:"country,omitempty" json:"country,omitempty"`
	Role      string   `bson:"role" json:"role"`
	Timezone  string   `bson:"timezone,omitempty" json:"timezone,omitempty"` // preferred viewing zone
	Interests []string `bson:"interests,omitempty" json:"interests,omitempty"`
	Favorites []string `bson:"favorites,omitempty" json:"favorites,omitempty"` // advisor ids
	FCMToken  string   `bson:"fcmToken,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
