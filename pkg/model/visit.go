package model

import "time"

type VisitStatus string

const (
	VisitStatusCheckedIn  VisitStatus = "checked_in"
	VisitStatusCheckedOut VisitStatus = "checked_out"
	VisitStatusCancelled  VisitStatus = "cancelled"
)

type VisitLog struct {
	ID           int64       `json:"id" db:"id"`
	Visitor      Visitor     `json:"visitor"`
	Host         Host        `json:"host"`
	Purpose      *string     `json:"purpose" db:"purpose"`
	BadgeCode    string      `json:"badge_code" db:"badge_code"`
	CheckInTime  time.Time   `json:"check_in_time" db:"check_in_time"`
	CheckOutTime *time.Time  `json:"check_out_time" db:"check_out_time"`
	Status       VisitStatus `json:"status" db:"status"`
}
