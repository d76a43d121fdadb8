package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Reservation is immutable after insertion. The half-open interval
// [StartTime, EndTime) never intersects another persisted reservation's.
type Reservation struct {
	ID        string    `bson:"_id,omitempty"`
	Username  string    `bson:"username"`
	StartTime time.Time `bson:"startTime"`
	EndTime   time.Time `bson:"endTime"`
	TimeModel `bson:",inline"`
}
