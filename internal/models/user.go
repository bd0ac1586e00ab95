package model

import (
	"time"
)

// UserProfile est l'utilisateur du roster. Le roster est géré en amont
// (inscription, auth), le moteur de gamification le lit seulement.
type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	MeterID   string    `json:"meterId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
