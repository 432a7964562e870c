package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CampaignTypeVolunteer      = "VOLUNTEER"
	CampaignTypeEvent          = "EVENT"
	CampaignTypeSocialActivity = "SOCIAL_ACTIVITY"

	CampaignStatusUpcoming  = "UPCOMING"
	CampaignStatusOngoing   = "ONGOING"
	CampaignStatusCompleted = "COMPLETED"
	CampaignStatusCancelled = "CANCELLED"
)

var CampaignTypes = []string{
	CampaignTypeVolunteer,
	CampaignTypeEvent,
	CampaignTypeSocialActivity,
}

var CampaignStatuses = []string{
	CampaignStatusUpcoming,
	CampaignStatusOngoing,
	CampaignStatusCompleted,
	CampaignStatusCancelled,
}

var CampaignCategories = []string{
	"শিক্ষা",
	"স্বাস্থ্য",
	"পরিবেশ",
	"যুব উন্নয়ন",
	"সামাজিক কার্যক্রম",
	"অন্যান্য",
}

type CampaignImage struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"publicId" bson:"publicId"`
	Order    int    `json:"order" bson:"order"`
}

type Campaign struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title                string             `json:"title" bson:"title"`
	Description          string             `json:"description" bson:"description"`
	Images               []CampaignImage    `json:"images" bson:"images"`
	Category             string             `json:"category" bson:"category"`
	Type                 string             `json:"type" bson:"type"`
	StartDate            time.Time          `json:"startDate" bson:"startDate"`
	EndDate              *time.Time         `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Location             string             `json:"location,omitempty" bson:"location,omitempty"`
	VolunteerLimit       *int               `json:"volunteerLimit,omitempty" bson:"volunteerLimit,omitempty"`
	RegisteredVolunteers int                `json:"registeredVolunteers" bson:"registeredVolunteers"`
	Status               string             `json:"status" bson:"status"`
	Priority             int                `json:"priority" bson:"priority"`
	CreatedBy            primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func ValidCampaignType(t string) bool {
	return contains(CampaignTypes, t)
}

func ValidCampaignStatus(s string) bool {
	return contains(CampaignStatuses, s)
}

func ValidCampaignCategory(c string) bool {
	return contains(CampaignCategories, c)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
