package services

import (
	"context"
	"errors"
	"log"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Feni2Backend/config/cloudinary"
	"Feni2Backend/config/db"
	"Feni2Backend/models"
	"Feni2Backend/util"
)

// =======================
// Validation
// =======================

/*
* Campaign create payload must carry the required fields and respect the
* schema limits before anything touches the store.
 */
func validateCampaignInput(data map[string]interface{}) error {
	required := []string{"title", "description", "category", "type"}
	for _, field := range required {
		if _, err := util.GetTrimmedString(data, field); err != nil {
			return errors.New(util.CAMPAIGN_FIELDS_REQUIRED)
		}
	}
	if _, ok := data["startDate"]; !ok {
		return errors.New(util.CAMPAIGN_FIELDS_REQUIRED)
	}

	title := data["title"].(string)
	if utf8.RuneCountInString(title) < 5 {
		return errors.New(util.CAMPAIGN_TITLE_TOO_SHORT)
	}
	if utf8.RuneCountInString(title) > 200 {
		return errors.New(util.CAMPAIGN_TITLE_TOO_LONG)
	}
	if utf8.RuneCountInString(data["description"].(string)) < 20 {
		return errors.New(util.CAMPAIGN_DESC_TOO_SHORT)
	}
	if !models.ValidCampaignType(data["type"].(string)) {
		return errors.New(util.CAMPAIGN_INVALID_TYPE)
	}
	if !models.ValidCampaignCategory(data["category"].(string)) {
		return errors.New(util.CAMPAIGN_INVALID_CATEG)
	}
	return nil
}

// checkPriority bounds priority to 0..10 for campaigns and notices alike.
func checkPriority(v interface{}) (int, error) {
	p, ok := util.ToInt(v)
	if !ok || p < 0 || p > 10 {
		return 0, errors.New(util.INVALID_PRIORITY)
	}
	return p, nil
}

// =======================
// Query contract
// =======================

func campaignListFilter(status, campaignType string) bson.M {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if campaignType != "" {
		filter["type"] = campaignType
	}
	return filter
}

// High priority first, newest first within the same priority.
func campaignListSort() bson.D {
	return bson.D{
		{Key: "priority", Value: -1},
		{Key: "createdAt", Value: -1},
	}
}

// =======================
// Images
// =======================

func imagesFromDoc(doc bson.M) []models.CampaignImage {
	if doc == nil {
		return []models.CampaignImage{}
	}
	images := []models.CampaignImage{}
	switch list := doc["images"].(type) {
	case []models.CampaignImage:
		return list
	case primitive.A:
		for _, item := range list {
			if m, ok := item.(bson.M); ok {
				images = append(images, models.CampaignImage{
					URL:      docString(m, "url", ""),
					PublicID: docString(m, "publicId", ""),
					Order:    docInt(m, "order", 0),
				})
			}
		}
	case []interface{}:
		for _, item := range list {
			if m, ok := item.(bson.M); ok {
				images = append(images, models.CampaignImage{
					URL:      docString(m, "url", ""),
					PublicID: docString(m, "publicId", ""),
					Order:    docInt(m, "order", 0),
				})
			}
		}
	}
	return images
}

// ReorderImages reassigns the dense order sequence 0..n-1.
func ReorderImages(images []models.CampaignImage) []models.CampaignImage {
	out := make([]models.CampaignImage, len(images))
	for i, img := range images {
		img.Order = i
		out[i] = img
	}
	return out
}

/*
* Best-effort media cleanup. One failed destroy never stops the rest and
* never fails the caller; orphaned media at the host is acceptable.
 */
func deleteImagesFromHost(ctx context.Context, images []models.CampaignImage) {
	for _, img := range images {
		if img.PublicID == "" {
			continue
		}
		if err := cloudinary.DestroyImage(ctx, img.PublicID); err != nil {
			log.Println("Failed deleting image from media host:", img.PublicID, err)
		}
	}
}

// =======================
// Projection
// =======================

func emptyCreatedBy() gin.H {
	return gin.H{
		"_id":   "",
		"name":  "",
		"email": "",
		"role":  "ADMIN",
	}
}

// expandCreatedBy shapes an already embedded creator document.
func expandCreatedBy(m bson.M) gin.H {
	return gin.H{
		"_id":   docObjectIDHex(m, "_id"),
		"name":  docString(m, "name", ""),
		"email": docString(m, "email", ""),
		"role":  docString(m, "role", "ADMIN"),
	}
}

/*
* createdBy is stored as a reference but historically leaked through in
* several shapes. Resolve each explicitly: an id is expanded with an
* admin lookup, an embedded document passes through, anything else
* projects as the zero-valued creator.
 */
func resolveCreatedBy(ctx context.Context, v interface{}) gin.H {
	var oid primitive.ObjectID

	switch ref := v.(type) {
	case bson.M:
		return expandCreatedBy(ref)
	case map[string]interface{}:
		return expandCreatedBy(bson.M(ref))
	case primitive.ObjectID:
		oid = ref
	case string:
		parsed, err := primitive.ObjectIDFromHex(ref)
		if err != nil {
			return emptyCreatedBy()
		}
		oid = parsed
	default:
		return emptyCreatedBy()
	}

	admin := bson.M{}
	err := db.FindOne(ctx, db.OpenCollection(util.AdminCollection), bson.M{"_id": oid}, &admin)
	if err != nil {
		resp := emptyCreatedBy()
		resp["_id"] = oid.Hex()
		return resp
	}

	return gin.H{
		"_id":   oid.Hex(),
		"name":  docString(admin, "name", ""),
		"email": docString(admin, "email", ""),
		"role":  docString(admin, "role", "ADMIN"),
	}
}

func emptyCampaign() gin.H {
	now := time.Now()
	return gin.H{
		"_id":                  "",
		"title":                "",
		"description":          "",
		"images":               []gin.H{},
		"category":             "",
		"type":                 models.CampaignTypeVolunteer,
		"startDate":            now,
		"location":             "",
		"registeredVolunteers": 0,
		"status":               models.CampaignStatusUpcoming,
		"priority":             0,
		"createdBy":            emptyCreatedBy(),
		"createdAt":            now,
		"updatedAt":            now,
	}
}

/*
* normalizeCampaign backfills every declared field with a type-correct
* default so a partially written record still leaves the boundary whole.
* A record that cannot be read at all projects as the zero-valued
* placeholder; list endpoints never fail because one row is malformed.
 */
func normalizeCampaign(doc bson.M, createdBy gin.H) gin.H {
	if doc == nil {
		log.Println("Warning: nil document passed to normalizeCampaign")
		return emptyCampaign()
	}
	if createdBy == nil {
		createdBy = emptyCreatedBy()
	}

	images := []gin.H{}
	for _, img := range imagesFromDoc(doc) {
		images = append(images, gin.H{
			"url":      img.URL,
			"publicId": img.PublicID,
			"order":    img.Order,
		})
	}

	now := time.Now()
	resp := gin.H{
		"_id":                  docObjectIDHex(doc, "_id"),
		"title":                docString(doc, "title", ""),
		"description":          docString(doc, "description", ""),
		"images":               images,
		"category":             docString(doc, "category", ""),
		"type":                 docString(doc, "type", models.CampaignTypeVolunteer),
		"startDate":            docTime(doc, "startDate", now),
		"location":             docString(doc, "location", ""),
		"registeredVolunteers": docInt(doc, "registeredVolunteers", 0),
		"status":               docString(doc, "status", models.CampaignStatusUpcoming),
		"priority":             docInt(doc, "priority", 0),
		"createdBy":            createdBy,
		"createdAt":            docTime(doc, "createdAt", now),
		"updatedAt":            docTime(doc, "updatedAt", now),
	}
	if endDate := docTimePtr(doc, "endDate"); endDate != nil {
		resp["endDate"] = endDate
	}
	if limit, ok := util.ToInt(doc["volunteerLimit"]); ok {
		resp["volunteerLimit"] = limit
	}
	return resp
}

func projectCampaign(ctx context.Context, doc bson.M) gin.H {
	if doc == nil {
		return emptyCampaign()
	}
	return normalizeCampaign(doc, resolveCreatedBy(ctx, doc["createdBy"]))
}

// =======================
// Operations
// =======================

/*
* Validate input
* Coerce date and numeric fields
* Persist with the enforced defaults and echo the projection
 */
func CreateCampaign(ctx context.Context, data map[string]interface{}, images []models.CampaignImage, createdBy string) (gin.H, error) {
	if err := validateCampaignInput(data); err != nil {
		return nil, err
	}

	startDate, err := coerceDate(data["startDate"])
	if err != nil {
		return nil, errors.New(util.INVALID_DATE)
	}

	creator, err := primitive.ObjectIDFromHex(createdBy)
	if err != nil {
		return nil, errors.New(util.INVALID_ID)
	}

	now := time.Now()
	doc := bson.M{
		"title":                data["title"],
		"description":          data["description"],
		"images":               ReorderImages(images),
		"category":             data["category"],
		"type":                 data["type"],
		"startDate":            startDate,
		"registeredVolunteers": 0,
		"status":               models.CampaignStatusUpcoming,
		"priority":             0,
		"createdBy":            creator,
		"createdAt":            now,
		"updatedAt":            now,
	}
	if endDate, err := coerceDate(data["endDate"]); err == nil {
		doc["endDate"] = endDate
	}
	if location, ok := data["location"].(string); ok && location != "" {
		doc["location"] = location
	}
	if _, ok := data["volunteerLimit"]; ok {
		limit, ok := util.ToInt(data["volunteerLimit"])
		if !ok || limit < 1 {
			return nil, errors.New(util.CAMPAIGN_LIMIT_TOO_SMALL)
		}
		doc["volunteerLimit"] = limit
	}
	if _, ok := data["priority"]; ok {
		priority, err := checkPriority(data["priority"])
		if err != nil {
			return nil, err
		}
		doc["priority"] = priority
	}

	collection := db.OpenCollection(util.CampaignCollection)
	inserted, err := db.CreateOne(ctx, collection, doc)
	if err != nil {
		log.Println("Error from createOne while creating campaign:", err)
		return nil, err
	}
	doc["_id"] = inserted.InsertedID

	return gin.H{"campaign": projectCampaign(ctx, doc)}, nil
}

func listCampaigns(ctx context.Context, filter bson.M) ([]gin.H, error) {
	collection := db.OpenCollection(util.CampaignCollection)

	opts := options.Find().SetSort(campaignListSort())
	docs, err := db.FindAll(ctx, collection, filter, opts)
	if err != nil {
		return nil, err
	}

	campaigns := make([]gin.H, 0, len(docs))
	for _, doc := range docs {
		campaigns = append(campaigns, projectCampaign(ctx, doc))
	}
	return campaigns, nil
}

func GetAllCampaigns(ctx context.Context, status, campaignType string) (gin.H, string, error) {
	campaigns, err := listCampaigns(ctx, campaignListFilter(status, campaignType))
	if err != nil {
		log.Println("Error from findAll while fetching campaigns:", err)
		return nil, "", err
	}

	message := util.ALL_CAMPAIGNS
	if len(campaigns) == 0 {
		message = util.NO_CAMPAIGNS
	}
	return gin.H{"campaigns": campaigns}, message, nil
}

func GetActiveCampaigns(ctx context.Context) (gin.H, error) {
	campaigns, err := listCampaigns(ctx, bson.M{"status": models.CampaignStatusOngoing})
	if err != nil {
		log.Println("Error from findAll while fetching active campaigns:", err)
		return nil, err
	}
	return gin.H{"campaigns": campaigns}, nil
}

func findCampaign(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.NotFound(util.CAMPAIGN_NOT_FOUND)
	}

	collection := db.OpenCollection(util.CampaignCollection)
	doc := bson.M{}
	err = db.FindOne(ctx, collection, bson.M{"_id": oid}, &doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.NotFound(util.CAMPAIGN_NOT_FOUND)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func GetCampaignByID(ctx context.Context, id string) (gin.H, error) {
	doc, err := findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return gin.H{"campaign": projectCampaign(ctx, doc)}, nil
}

/*
* Build the $set from the allow-listed fields only. New images replace
* the whole set, the old ones are destroyed at the host first.
 */
func UpdateCampaign(ctx context.Context, id string, data map[string]interface{}, newImages []models.CampaignImage) (gin.H, error) {
	doc, err := findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"updatedAt": time.Now()}

	stringFields := []string{"title", "description", "category", "type", "location"}
	for _, field := range stringFields {
		if err := util.TrimIfExists(data, field); err != nil {
			return nil, err
		}
		if v, ok := data[field].(string); ok {
			update[field] = v
		}
	}
	if title, ok := update["title"].(string); ok {
		if utf8.RuneCountInString(title) < 5 {
			return nil, errors.New(util.CAMPAIGN_TITLE_TOO_SHORT)
		}
		if utf8.RuneCountInString(title) > 200 {
			return nil, errors.New(util.CAMPAIGN_TITLE_TOO_LONG)
		}
	}
	if desc, ok := update["description"].(string); ok && utf8.RuneCountInString(desc) < 20 {
		return nil, errors.New(util.CAMPAIGN_DESC_TOO_SHORT)
	}
	if t, ok := update["type"].(string); ok && !models.ValidCampaignType(t) {
		return nil, errors.New(util.CAMPAIGN_INVALID_TYPE)
	}
	if c, ok := update["category"].(string); ok && !models.ValidCampaignCategory(c) {
		return nil, errors.New(util.CAMPAIGN_INVALID_CATEG)
	}

	if _, ok := data["startDate"]; ok {
		startDate, err := coerceDate(data["startDate"])
		if err != nil {
			return nil, errors.New(util.INVALID_DATE)
		}
		update["startDate"] = startDate
	}
	if _, ok := data["endDate"]; ok {
		endDate, err := coerceDate(data["endDate"])
		if err != nil {
			return nil, errors.New(util.INVALID_DATE)
		}
		update["endDate"] = endDate
	}
	if _, ok := data["volunteerLimit"]; ok {
		limit, ok := util.ToInt(data["volunteerLimit"])
		if !ok || limit < 1 {
			return nil, errors.New(util.CAMPAIGN_LIMIT_TOO_SMALL)
		}
		update["volunteerLimit"] = limit
	}
	if _, ok := data["priority"]; ok {
		priority, err := checkPriority(data["priority"])
		if err != nil {
			return nil, err
		}
		update["priority"] = priority
	}

	if len(newImages) > 0 {
		deleteImagesFromHost(ctx, imagesFromDoc(doc))
		update["images"] = ReorderImages(newImages)
	}

	collection := db.OpenCollection(util.CampaignCollection)
	_, err = db.UpdateOne(ctx, collection, bson.M{"_id": doc["_id"]}, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from updateOne while updating campaign:", err)
		return nil, err
	}

	updated, err := findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return gin.H{"campaign": projectCampaign(ctx, updated)}, nil
}

// Any status can be set from any other, enum membership is the only rule.
func UpdateCampaignStatus(ctx context.Context, id string, status string) (gin.H, error) {
	if !models.ValidCampaignStatus(status) {
		return nil, errors.New(util.CAMPAIGN_STATUS_INVALID)
	}

	doc, err := findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	collection := db.OpenCollection(util.CampaignCollection)
	_, err = db.UpdateOne(ctx, collection,
		bson.M{"_id": doc["_id"]},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("Error from updateOne while updating status:", err)
		return nil, err
	}

	updated, err := findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return gin.H{"campaign": projectCampaign(ctx, updated)}, nil
}

// DeleteCampaign cascades a best-effort destroy of each hosted image.
func DeleteCampaign(ctx context.Context, id string) error {
	doc, err := findCampaign(ctx, id)
	if err != nil {
		return err
	}

	deleteImagesFromHost(ctx, imagesFromDoc(doc))

	collection := db.OpenCollection(util.CampaignCollection)
	deleted, err := db.DeleteOne(ctx, collection, bson.M{"_id": doc["_id"]})
	if err != nil {
		log.Println("Error from deleteOne while deleting campaign:", err)
		return err
	}
	log.Println("Deleted campaigns:", deleted.DeletedCount)
	return nil
}

func GetCampaignStats(ctx context.Context) (gin.H, error) {
	collection := db.OpenCollection(util.CampaignCollection)

	stats := gin.H{}
	total, err := db.Count(ctx, collection, nil)
	if err != nil {
		return nil, err
	}
	stats["total"] = total

	byStatus := map[string]string{
		"upcoming":  models.CampaignStatusUpcoming,
		"ongoing":   models.CampaignStatusOngoing,
		"completed": models.CampaignStatusCompleted,
		"cancelled": models.CampaignStatusCancelled,
	}
	for key, status := range byStatus {
		count, err := db.Count(ctx, collection, bson.M{"status": status})
		if err != nil {
			return nil, err
		}
		stats[key] = count
	}

	return gin.H{"stats": stats}, nil
}

// AddImages appends uploads, ordering continues after the existing set.
func AddImages(ctx context.Context, id string, images []models.CampaignImage) (gin.H, error) {
	doc, err := findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	existing := imagesFromDoc(doc)
	combined := ReorderImages(append(existing, images...))

	collection := db.OpenCollection(util.CampaignCollection)
	_, err = db.UpdateOne(ctx, collection,
		bson.M{"_id": doc["_id"]},
		bson.M{"$set": bson.M{"images": combined, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("Error from updateOne while adding images:", err)
		return nil, err
	}

	updated, err := findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return gin.H{"campaign": projectCampaign(ctx, updated)}, nil
}

/*
* Remove one image by publicId, destroy it at the host and renumber the
* remainder to the dense sequence 0..n-1.
 */
func RemoveImage(ctx context.Context, id string, publicID string) (gin.H, error) {
	doc, err := findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	images := imagesFromDoc(doc)
	index := -1
	for i, img := range images {
		if img.PublicID == publicID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, util.NotFound(util.IMAGE_NOT_FOUND)
	}

	if err := cloudinary.DestroyImage(ctx, publicID); err != nil {
		log.Println("Failed deleting image from media host:", publicID, err)
	}

	remaining := ReorderImages(append(images[:index], images[index+1:]...))

	collection := db.OpenCollection(util.CampaignCollection)
	_, err = db.UpdateOne(ctx, collection,
		bson.M{"_id": doc["_id"]},
		bson.M{"$set": bson.M{"images": remaining, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("Error from updateOne while removing image:", err)
		return nil, err
	}

	updated, err := findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return gin.H{"campaign": projectCampaign(ctx, updated)}, nil
}

// coerceDate accepts a formatted string or an already parsed time.
func coerceDate(v interface{}) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case primitive.DateTime:
		return d.Time(), nil
	case string:
		return util.ParseDate(d)
	default:
		return time.Time{}, errors.New("missing date")
	}
}
