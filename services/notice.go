package services

import (
	"context"
	"errors"
	"log"
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

// DefaultUpcomingLimit applies when the caller does not pass ?limit=.
const DefaultUpcomingLimit = 10

// ImportantNoticeLimit caps the important-notice feed.
const ImportantNoticeLimit = 20

// =======================
// Query contract
// =======================

func noticeListFilter(noticeType string) bson.M {
	filter := bson.M{}
	if noticeType != "" {
		filter["type"] = noticeType
	}
	return filter
}

func noticeListSort() bson.D {
	return bson.D{
		{Key: "date", Value: -1},
		{Key: "priority", Value: -1},
	}
}

// todayRange returns [local midnight, next midnight).
func todayRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

func todayNoticeFilter(now time.Time) bson.M {
	start, end := todayRange(now)
	return bson.M{"date": bson.M{"$gte": start, "$lt": end}}
}

func todayNoticeSort() bson.D {
	return bson.D{
		{Key: "priority", Value: -1},
		{Key: "createdAt", Value: -1},
	}
}

func upcomingNoticeFilter(now time.Time) bson.M {
	start, _ := todayRange(now)
	return bson.M{"date": bson.M{"$gte": start}}
}

func upcomingNoticeSort() bson.D {
	return bson.D{
		{Key: "date", Value: 1},
		{Key: "priority", Value: -1},
	}
}

// =======================
// Projection
// =======================

func normalizeNotice(doc bson.M) gin.H {
	return gin.H{
		"_id":         docObjectIDHex(doc, "_id"),
		"title":       docString(doc, "title", ""),
		"description": docString(doc, "description", ""),
		"date":        docTime(doc, "date", time.Time{}),
		"time":        docString(doc, "time", ""),
		"location":    docString(doc, "location", ""),
		"type":        docString(doc, "type", models.NoticeTypeDaily),
		"priority":    docInt(doc, "priority", 0),
		"createdAt":   docTime(doc, "createdAt", time.Time{}),
	}
}

// =======================
// Operations
// =======================

/*
* Require the declared fields, coerce the date, default type to daily
* and priority to 0, persist.
 */
func CreateNotice(ctx context.Context, data map[string]interface{}) (gin.H, error) {
	for _, field := range []string{"title", "description", "location"} {
		if _, err := util.GetTrimmedString(data, field); err != nil {
			return nil, errors.New(util.NOTICE_FIELDS_REQUIRED)
		}
	}
	if _, ok := data["date"]; !ok {
		return nil, errors.New(util.NOTICE_FIELDS_REQUIRED)
	}

	date, err := coerceDate(data["date"])
	if err != nil {
		return nil, errors.New(util.INVALID_DATE)
	}

	noticeType := models.NoticeTypeDaily
	if t, ok := data["type"].(string); ok && t != "" {
		if !models.ValidNoticeType(t) {
			return nil, errors.New(util.NOTICE_INVALID_TYPE)
		}
		noticeType = t
	}

	priority := 0
	if _, ok := data["priority"]; ok {
		p, err := checkPriority(data["priority"])
		if err != nil {
			return nil, err
		}
		priority = p
	}

	timeOfDay := ""
	if t, ok := data["time"].(string); ok {
		timeOfDay = t
	}

	doc := bson.M{
		"title":       data["title"],
		"description": data["description"],
		"date":        date,
		"time":        timeOfDay,
		"location":    data["location"],
		"type":        noticeType,
		"priority":    priority,
		"createdAt":   time.Now(),
	}

	collection := db.OpenCollection(util.NoticeCollection)
	inserted, err := db.CreateOne(ctx, collection, doc)
	if err != nil {
		log.Println("Error from createOne while creating notice:", err)
		return nil, err
	}
	doc["_id"] = inserted.InsertedID

	return gin.H{"notice": normalizeNotice(doc)}, nil
}

func listNotices(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]gin.H, error) {
	collection := db.OpenCollection(util.NoticeCollection)

	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	docs, err := db.FindAll(ctx, collection, filter, opts)
	if err != nil {
		return nil, err
	}

	notices := make([]gin.H, 0, len(docs))
	for _, doc := range docs {
		notices = append(notices, normalizeNotice(doc))
	}
	return notices, nil
}

func GetAllNotices(ctx context.Context, noticeType string) (gin.H, error) {
	notices, err := listNotices(ctx, noticeListFilter(noticeType), noticeListSort(), 0)
	if err != nil {
		log.Println("Error from findAll while fetching notices:", err)
		return nil, err
	}
	return gin.H{"notices": notices}, nil
}

func GetTodayNotices(ctx context.Context) (gin.H, error) {
	notices, err := listNotices(ctx, todayNoticeFilter(time.Now()), todayNoticeSort(), 0)
	if err != nil {
		log.Println("Error from findAll while fetching today's notices:", err)
		return nil, err
	}
	return gin.H{"notices": notices}, nil
}

func GetUpcomingNotices(ctx context.Context, limit int64) (gin.H, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	notices, err := listNotices(ctx, upcomingNoticeFilter(time.Now()), upcomingNoticeSort(), limit)
	if err != nil {
		log.Println("Error from findAll while fetching upcoming notices:", err)
		return nil, err
	}
	return gin.H{"notices": notices}, nil
}

func GetImportantNotices(ctx context.Context) (gin.H, error) {
	notices, err := listNotices(ctx,
		bson.M{"type": models.NoticeTypeImportant},
		noticeListSort(),
		ImportantNoticeLimit,
	)
	if err != nil {
		log.Println("Error from findAll while fetching important notices:", err)
		return nil, err
	}
	return gin.H{"notices": notices}, nil
}

func findNotice(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFound(util.NOTICE_NOT_FOUND)
	}

	collection := db.OpenCollection(util.NoticeCollection)
	doc := bson.M{}
	err = db.FindOne(ctx, collection, bson.M{"_id": oid}, &doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFound(util.NOTICE_NOT_FOUND)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func GetNoticeByID(ctx context.Context, id string) (gin.H, error) {
	doc, err := findNotice(ctx, id)
	if err != nil {
		return nil, err
	}
	return gin.H{"notice": normalizeNotice(doc)}, nil
}

func UpdateNotice(ctx context.Context, id string, data map[string]interface{}) (gin.H, error) {
	doc, err := findNotice(ctx, id)
	if err != nil {
		return nil, err
	}

	update := bson.M{}
	for _, field := range []string{"title", "description", "time", "location"} {
		if v, ok := data[field].(string); ok {
			update[field] = v
		}
	}
	if _, ok := data["date"]; ok {
		date, err := coerceDate(data["date"])
		if err != nil {
			return nil, errors.New(util.INVALID_DATE)
		}
		update["date"] = date
	}
	if t, ok := data["type"].(string); ok {
		if !models.ValidNoticeType(t) {
			return nil, errors.New(util.NOTICE_INVALID_TYPE)
		}
		update["type"] = t
	}
	if _, ok := data["priority"]; ok {
		priority, err := checkPriority(data["priority"])
		if err != nil {
			return nil, err
		}
		update["priority"] = priority
	}

	collection := db.OpenCollection(util.NoticeCollection)
	_, err = db.UpdateOne(ctx, collection, bson.M{"_id": doc["_id"]}, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from updateOne while updating notice:", err)
		return nil, err
	}

	updated, err := findNotice(ctx, id)
	if err != nil {
		return nil, err
	}
	return gin.H{"notice": normalizeNotice(updated)}, nil
}

func DeleteNotice(ctx context.Context, id string) error {
	doc, err := findNotice(ctx, id)
	if err != nil {
		return err
	}

	collection := db.OpenCollection(util.NoticeCollection)
	deleted, err := db.DeleteOne(ctx, collection, bson.M{"_id": doc["_id"]})
	if err != nil {
		log.Println("Error from deleteOne while deleting notice:", err)
		return err
	}
	log.Println("Deleted notices:", deleted.DeletedCount)
	return nil
}
