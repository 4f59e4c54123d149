package models

import "time"

// Professional is the minimal identity surface this core needs: notification
// targets and block ownership. Full profile management lives elsewhere.
type Professional struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	FCMToken  string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
