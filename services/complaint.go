package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Feni2Backend/config/db"
	"Feni2Backend/models"
	"Feni2Backend/util"
)

const complaintIDPrefix = "CMP"

// FormatComplaintID renders a ticket number, zero-padded to at least
// three digits: 1 -> CMP-001, 1000 -> CMP-1000.
func FormatComplaintID(n int) string {
	return fmt.Sprintf("%s-%03d", complaintIDPrefix, n)
}

// ParseComplaintID extracts the numeric suffix of a ticket number.
func ParseComplaintID(id string) (int, error) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed complaint id %q", id)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed complaint id %q", id)
	}
	return n, nil
}

/*
* SeedComplaintCounter runs once at boot. It initializes the atomic
* ticket counter from the most recently created complaint so existing
* deployments keep their numbering. A latest ticket that does not parse
* is an error, the process should not guess.
 */
func SeedComplaintCounter(ctx context.Context) error {
	collection := db.OpenCollection(util.ComplaintCollection)

	opts := options.FindOne().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"complaintId": 1})

	last := make(map[string]interface{})
	err := db.FindOne(ctx, collection, bson.M{}, &last, opts)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return db.SeedSequence(ctx, util.ComplaintSequence, 0)
	}
	if err != nil {
		return err
	}

	lastID, _ := last["complaintId"].(string)
	n, err := ParseComplaintID(lastID)
	if err != nil {
		return err
	}
	return db.SeedSequence(ctx, util.ComplaintSequence, n)
}

/*
* GenerateComplaintID hands out the next ticket number through the
* store's atomic counter, so concurrent submissions never compute the
* same value. The unique index on complaintId stays as the backstop.
 */
func GenerateComplaintID(ctx context.Context) (string, error) {
	seq, err := db.NextSequence(ctx, util.ComplaintSequence)
	if err != nil {
		return "", err
	}
	return FormatComplaintID(seq), nil
}

// complaintInsertError maps a unique-index collision on complaintId to
// the localized creation failure. Anything else passes through.
func complaintInsertError(err error) error {
	if db.IsDuplicateKey(err) {
		return errors.New(util.COMPLAINT_DUPLICATE_TICKET)
	}
	return err
}

func normalizeComplaint(doc bson.M) gin.H {
	resp := gin.H{
		"_id":           docObjectIDHex(doc, "_id"),
		"complaintId":   docString(doc, "complaintId", ""),
		"name":          docString(doc, "name", ""),
		"phone":         docString(doc, "phone", ""),
		"area":          docString(doc, "area", ""),
		"complaintType": docString(doc, "complaintType", ""),
		"details":       docString(doc, "details", ""),
		"status":        docString(doc, "status", models.ComplaintStatusPending),
		"adminNote":     docString(doc, "adminNote", ""),
		"createdAt":     docTime(doc, "createdAt", time.Time{}),
	}
	if solvedAt := docTimePtr(doc, "solvedAt"); solvedAt != nil {
		resp["solvedAt"] = solvedAt
	}
	return resp
}

/*
* Trim and require every submission field
* Check the complaint type against the closed enum
* Allocate the ticket number, then persist in one insert
 */
func CreateComplaint(ctx context.Context, data map[string]interface{}) (gin.H, error) {
	fields := []string{"name", "phone", "area", "complaintType", "details"}
	for _, field := range fields {
		if _, err := util.GetTrimmedString(data, field); err != nil {
			return nil, errors.New(util.COMPLAINT_FIELDS_REQUIRED)
		}
	}
	if !models.ValidComplaintType(data["complaintType"].(string)) {
		return nil, errors.New(util.COMPLAINT_INVALID_TYPE)
	}

	complaintID, err := GenerateComplaintID(ctx)
	if err != nil {
		log.Println("Error from generateComplaintID:", err)
		return nil, errors.New(util.COMPLAINT_CREATE_FAILED)
	}

	doc := bson.M{
		"complaintId":   complaintID,
		"name":          data["name"],
		"phone":         data["phone"],
		"area":          data["area"],
		"complaintType": data["complaintType"],
		"details":       data["details"],
		"status":        models.ComplaintStatusPending,
		"createdAt":     time.Now(),
	}

	collection := db.OpenCollection(util.ComplaintCollection)
	inserted, err := db.CreateOne(ctx, collection, doc)
	if err != nil {
		log.Println("Error from createOne while creating complaint:", err)
		return nil, complaintInsertError(err)
	}
	doc["_id"] = inserted.InsertedID

	return gin.H{"complaint": normalizeComplaint(doc)}, nil
}

// TrackComplaints lists a citizen's own complaints by phone, newest first.
func TrackComplaints(ctx context.Context, phone string) (gin.H, error) {
	collection := db.OpenCollection(util.ComplaintCollection)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	docs, err := db.FindAll(ctx, collection, bson.M{"phone": phone}, opts)
	if err != nil {
		log.Println("Error from findAll while tracking complaints:", err)
		return nil, err
	}
	if len(docs) == 0 {
		return nil, util.NotFound(util.COMPLAINTS_NONE_FOR_PHONE)
	}

	complaints := make([]gin.H, 0, len(docs))
	for _, doc := range docs {
		complaints = append(complaints, normalizeComplaint(doc))
	}
	return gin.H{"complaints": complaints}, nil
}

func GetAllComplaints(ctx context.Context) (gin.H, error) {
	collection := db.OpenCollection(util.ComplaintCollection)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	docs, err := db.FindAll(ctx, collection, nil, opts)
	if err != nil {
		log.Println("Error from findAll while fetching complaints:", err)
		return nil, err
	}

	complaints := make([]gin.H, 0, len(docs))
	for _, doc := range docs {
		complaints = append(complaints, normalizeComplaint(doc))
	}
	return gin.H{"complaints": complaints}, nil
}

func findComplaint(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFound(util.COMPLAINT_NOT_FOUND)
	}

	collection := db.OpenCollection(util.ComplaintCollection)
	doc := bson.M{}
	err = db.FindOne(ctx, collection, bson.M{"_id": oid}, &doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFound(util.COMPLAINT_NOT_FOUND)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func GetComplaintByID(ctx context.Context, id string) (gin.H, error) {
	doc, err := findComplaint(ctx, id)
	if err != nil {
		return nil, err
	}
	return gin.H{"complaint": normalizeComplaint(doc)}, nil
}

/*
* Status moves pending -> solved in practice. Only the literal value
* "solved" is special-cased for the solvedAt timestamp.
 */
func UpdateComplaintStatus(ctx context.Context, id string, status string, adminNote string) (gin.H, error) {
	if !models.ValidComplaintStatus(status) {
		return nil, errors.New(util.COMPLAINT_STATUS_REQUIRED)
	}

	doc, err := findComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"status": status}
	if adminNote != "" {
		update["adminNote"] = adminNote
	}
	if status == models.ComplaintStatusSolved {
		update["solvedAt"] = time.Now()
	}

	collection := db.OpenCollection(util.ComplaintCollection)
	_, err = db.UpdateOne(ctx, collection, bson.M{"_id": doc["_id"]}, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from updateOne while updating complaint:", err)
		return nil, err
	}

	updated, err := findComplaint(ctx, id)
	if err != nil {
		return nil, err
	}
	return gin.H{"complaint": normalizeComplaint(updated)}, nil
}

func DeleteComplaint(ctx context.Context, id string) (gin.H, error) {
	doc, err := findComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	collection := db.OpenCollection(util.ComplaintCollection)
	deleted, err := db.DeleteOne(ctx, collection, bson.M{"_id": doc["_id"]})
	if err != nil {
		log.Println("Error from deleteOne while deleting complaint:", err)
		return nil, err
	}
	log.Println("Deleted complaints:", deleted.DeletedCount)

	return gin.H{"complaint": normalizeComplaint(doc)}, nil
}

func GetComplaintStats(ctx context.Context) (gin.H, error) {
	collection := db.OpenCollection(util.ComplaintCollection)

	total, err := db.Count(ctx, collection, nil)
	if err != nil {
		return nil, err
	}
	pending, err := db.Count(ctx, collection, bson.M{"status": models.ComplaintStatusPending})
	if err != nil {
		return nil, err
	}
	solved, err := db.Count(ctx, collection, bson.M{"status": models.ComplaintStatusSolved})
	if err != nil {
		return nil, err
	}

	return gin.H{
		"stats": gin.H{
			"total":   total,
			"pending": pending,
			"solved":  solved,
		},
	}, nil
}
