package checkin

import "time"

type CheckIn struct {
	ID           string     `json:"id"`
	MemberID     string     `json:"member_id"`
	MemberName   string     `json:"member_name"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Notes        string     `json:"notes"`
}

// Open reports whether the member has not checked out yet.
func (c CheckIn) Open() bool {
	return c.CheckOutTime == nil
}

type CheckInRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	Notes    string `json:"notes"`
}
