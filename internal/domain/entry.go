package domain

import "time"

// Entry holds balance change data for a profile. Entries written within one
// payment transaction net to zero.
type Entry struct {
	ID        int64     `json:"id"`
	ProfileID int64     `json:"profile_id"`
	JobID     *int64    `json:"job_id,omitempty"`
	Amount    string    `json:"amount"` // can be negative or positive
	CreatedAt time.Time `json:"created_at"`
}
