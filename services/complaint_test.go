package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Feni2Backend/config/db"
	"Feni2Backend/models"
	"Feni2Backend/util"
)

func TestFormatComplaintID(t *testing.T) {
	assert.Equal(t, "CMP-001", FormatComplaintID(1))
	assert.Equal(t, "CMP-002", FormatComplaintID(2))
	assert.Equal(t, "CMP-010", FormatComplaintID(10))
	assert.Equal(t, "CMP-100", FormatComplaintID(100))
	assert.Equal(t, "CMP-999", FormatComplaintID(999))

	// the 1000th ticket must not be truncated
	assert.Equal(t, "CMP-1000", FormatComplaintID(1000))
	assert.Equal(t, "CMP-12345", FormatComplaintID(12345))
}

func TestParseComplaintID(t *testing.T) {
	n, err := ParseComplaintID("CMP-007")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = ParseComplaintID("CMP-1000")
	require.NoError(t, err)
	assert.Equal(t, 1000, n)
}

func TestParseComplaintIDMalformed(t *testing.T) {
	for _, id := range []string{"", "CMP", "CMP-", "CMP-abc", "garbage"} {
		_, err := ParseComplaintID(id)
		assert.Error(t, err, "expected error for %q", id)
	}
}

func TestComplaintIDRoundTrip(t *testing.T) {
	// sequential allocations render strictly increasing suffixes
	prev := 0
	for seq := 1; seq <= 1200; seq++ {
		id := FormatComplaintID(seq)
		n, err := ParseComplaintID(id)
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestDuplicateTicketReportsCreationFailure(t *testing.T) {
	// two concurrent submissions racing the counter end in a unique-index
	// collision; the loser must surface as a creation failure
	collision := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000}},
	}
	require.True(t, db.IsDuplicateKey(collision))
	assert.EqualError(t, complaintInsertError(collision), util.COMPLAINT_DUPLICATE_TICKET)
}

func TestComplaintInsertErrorPassthrough(t *testing.T) {
	plain := errors.New("connection reset")
	require.False(t, db.IsDuplicateKey(plain))
	assert.Equal(t, plain, complaintInsertError(plain))
}

func TestNormalizeComplaintDefaults(t *testing.T) {
	resp := normalizeComplaint(bson.M{})

	assert.Equal(t, models.ComplaintStatusPending, resp["status"])
	assert.Equal(t, "", resp["adminNote"])
	assert.Equal(t, "", resp["complaintId"])
	assert.NotContains(t, resp, "solvedAt")
}

func TestNormalizeComplaintFullDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	solved := time.Date(2025, 6, 3, 15, 30, 0, 0, time.UTC)

	resp := normalizeComplaint(bson.M{
		"_id":           oid,
		"complaintId":   "CMP-042",
		"name":          "রহিম",
		"phone":         "01712345678",
		"area":          "ফেনী সদর",
		"complaintType": "রাস্তা",
		"details":       "রাস্তায় বড় গর্ত",
		"status":        models.ComplaintStatusSolved,
		"adminNote":     "মেরামত সম্পন্ন",
		"createdAt":     primitive.NewDateTimeFromTime(created),
		"solvedAt":      primitive.NewDateTimeFromTime(solved),
	})

	assert.Equal(t, oid.Hex(), resp["_id"])
	assert.Equal(t, "CMP-042", resp["complaintId"])
	assert.Equal(t, models.ComplaintStatusSolved, resp["status"])
	assert.True(t, created.Equal(resp["createdAt"].(time.Time)))
	require.Contains(t, resp, "solvedAt")
	assert.True(t, solved.Equal(*resp["solvedAt"].(*time.Time)))
}
