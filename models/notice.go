package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NoticeTypeElection  = "election"
	NoticeTypeDaily     = "daily"
	NoticeTypeImportant = "important"
)

var NoticeTypes = []string{
	NoticeTypeElection,
	NoticeTypeDaily,
	NoticeTypeImportant,
}

type Notice struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Date        time.Time          `json:"date" bson:"date"`
	Time        string             `json:"time" bson:"time"`
	Location    string             `json:"location" bson:"location"`
	Type        string             `json:"type" bson:"type"`
	Priority    int                `json:"priority" bson:"priority"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

func ValidNoticeType(t string) bool {
	return contains(NoticeTypes, t)
}
