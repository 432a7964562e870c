package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ComplaintStatusPending = "pending"
	ComplaintStatusSolved  = "solved"
)

var ComplaintStatuses = []string{
	ComplaintStatusPending,
	ComplaintStatusSolved,
}

var ComplaintTypes = []string{
	"রাস্তা",
	"বিদ্যুৎ",
	"পানি",
	"স্বাস্থ্য",
	"শিক্ষা",
	"অন্যান্য",
}

// Complaint carries the externally visible ticket number in ComplaintID
// (CMP-001, CMP-002, ...). It is assigned once at creation and never changes.
type Complaint struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ComplaintID   string             `json:"complaintId" bson:"complaintId"`
	Name          string             `json:"name" bson:"name"`
	Phone         string             `json:"phone" bson:"phone"`
	Area          string             `json:"area" bson:"area"`
	ComplaintType string             `json:"complaintType" bson:"complaintType"`
	Details       string             `json:"details" bson:"details"`
	Status        string             `json:"status" bson:"status"`
	AdminNote     string             `json:"adminNote,omitempty" bson:"adminNote,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	SolvedAt      *time.Time         `json:"solvedAt,omitempty" bson:"solvedAt,omitempty"`
}

func ValidComplaintType(t string) bool {
	return contains(ComplaintTypes, t)
}

func ValidComplaintStatus(s string) bool {
	return contains(ComplaintStatuses, s)
}
