package model

import (
	"campnest/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldBookingID  = "booking_id"
	FieldUserID     = "user_id"
	FieldCampsiteID = "campsite_id"
	FieldRating     = "rating"
	FieldTitle      = "title"
	FieldComment    = "comment"
)

type Review struct {
	ID           string `db:"id"`
	BookingID    string `db:"booking_id"`
	UserID       string `db:"user_id"`
	CampsiteID   string `db:"campsite_id"`
	Rating       int    `db:"rating"`
	Title        string `db:"title"`
	Comment      string `db:"comment"`
	ReviewerName string `db:"reviewer_name" table:"users" column:"first_name"`
	model.Metadata
}

func (Review) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = reviews.user_id"
}
