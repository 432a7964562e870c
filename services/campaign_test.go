package services

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Feni2Backend/models"
	"Feni2Backend/util"
)

func validCampaignData() map[string]interface{} {
	return map[string]interface{}{
		"title":       "শীতবস্ত্র বিতরণ কর্মসূচি",
		"description": "ফেনী সদরের দুঃস্থ পরিবারের মাঝে শীতবস্ত্র বিতরণ করা হবে",
		"category":    "সামাজিক কার্যক্রম",
		"type":        models.CampaignTypeVolunteer,
		"startDate":   "2026-01-15",
	}
}

func TestValidateCampaignInput(t *testing.T) {
	assert.NoError(t, validateCampaignInput(validCampaignData()))
}

func TestValidateCampaignInputMissingFields(t *testing.T) {
	for _, field := range []string{"title", "description", "category", "type", "startDate"} {
		data := validCampaignData()
		delete(data, field)
		err := validateCampaignInput(data)
		require.Error(t, err, "expected error without %s", field)
		assert.Equal(t, util.CAMPAIGN_FIELDS_REQUIRED, err.Error())
	}
}

func TestValidateCampaignInputLimits(t *testing.T) {
	data := validCampaignData()
	data["title"] = "অভযন"
	assert.EqualError(t, validateCampaignInput(data), util.CAMPAIGN_TITLE_TOO_SHORT)

	data = validCampaignData()
	long := make([]rune, 201)
	for i := range long {
		long[i] = 'ক'
	}
	data["title"] = string(long)
	assert.EqualError(t, validateCampaignInput(data), util.CAMPAIGN_TITLE_TOO_LONG)

	data = validCampaignData()
	data["description"] = "ছোট বিবরণ"
	assert.EqualError(t, validateCampaignInput(data), util.CAMPAIGN_DESC_TOO_SHORT)

	data = validCampaignData()
	data["type"] = "MARATHON"
	assert.EqualError(t, validateCampaignInput(data), util.CAMPAIGN_INVALID_TYPE)

	data = validCampaignData()
	data["category"] = "unknown"
	assert.EqualError(t, validateCampaignInput(data), util.CAMPAIGN_INVALID_CATEG)
}

func TestCheckPriority(t *testing.T) {
	for _, p := range []interface{}{0, 10, float64(5), "7"} {
		got, err := checkPriority(p)
		require.NoError(t, err, "priority %v", p)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 10)
	}
	for _, p := range []interface{}{-1, 11, float64(99), "abc", nil} {
		_, err := checkPriority(p)
		assert.EqualError(t, err, util.INVALID_PRIORITY, "priority %v", p)
	}
}

func TestCreateCampaignRejectsVolunteerLimitBelowOne(t *testing.T) {
	ctx := context.Background()
	creator := primitive.NewObjectID().Hex()

	for _, limit := range []interface{}{"0", float64(-5), "garbage"} {
		data := validCampaignData()
		data["volunteerLimit"] = limit
		_, err := CreateCampaign(ctx, data, nil, creator)
		assert.EqualError(t, err, util.CAMPAIGN_LIMIT_TOO_SMALL, "limit %v", limit)
	}
}

func TestCreateCampaignRejectsOutOfRangePriority(t *testing.T) {
	ctx := context.Background()
	creator := primitive.NewObjectID().Hex()

	for _, p := range []interface{}{float64(99), "-1", float64(11)} {
		data := validCampaignData()
		data["priority"] = p
		_, err := CreateCampaign(ctx, data, nil, creator)
		assert.EqualError(t, err, util.INVALID_PRIORITY, "priority %v", p)
	}
}

func TestCampaignListFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, campaignListFilter("", ""))
	assert.Equal(t, bson.M{"status": models.CampaignStatusOngoing}, campaignListFilter(models.CampaignStatusOngoing, ""))
	assert.Equal(t,
		bson.M{"status": models.CampaignStatusUpcoming, "type": models.CampaignTypeEvent},
		campaignListFilter(models.CampaignStatusUpcoming, models.CampaignTypeEvent),
	)
}

func TestCampaignListSort(t *testing.T) {
	sort := campaignListSort()
	require.Len(t, sort, 2)
	assert.Equal(t, "priority", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
	assert.Equal(t, "createdAt", sort[1].Key)
	assert.Equal(t, -1, sort[1].Value)
}

func TestReorderImages(t *testing.T) {
	images := []models.CampaignImage{
		{URL: "a", PublicID: "pa", Order: 4},
		{URL: "b", PublicID: "pb", Order: 9},
		{URL: "c", PublicID: "pc", Order: 2},
	}

	out := ReorderImages(images)
	require.Len(t, out, 3)
	for i, img := range out {
		assert.Equal(t, i, img.Order)
	}
	assert.Equal(t, "a", out[0].URL)
	assert.Equal(t, "c", out[2].URL)
}

func TestReorderImagesAfterRemoval(t *testing.T) {
	images := []models.CampaignImage{
		{PublicID: "p0", Order: 0},
		{PublicID: "p1", Order: 1},
		{PublicID: "p2", Order: 2},
	}

	// drop the middle one, the rest renumber densely
	remaining := ReorderImages(append(images[:1], images[2:]...))
	require.Len(t, remaining, 2)
	assert.Equal(t, "p0", remaining[0].PublicID)
	assert.Equal(t, 0, remaining[0].Order)
	assert.Equal(t, "p2", remaining[1].PublicID)
	assert.Equal(t, 1, remaining[1].Order)
}

func TestImagesFromDocShapes(t *testing.T) {
	assert.Empty(t, imagesFromDoc(nil))
	assert.Empty(t, imagesFromDoc(bson.M{}))

	// the shape the driver decodes
	decoded := bson.M{"images": primitive.A{
		bson.M{"url": "https://img/1.jpg", "publicId": "one", "order": int32(0)},
		bson.M{"url": "https://img/2.jpg", "publicId": "two", "order": int32(1)},
	}}
	images := imagesFromDoc(decoded)
	require.Len(t, images, 2)
	assert.Equal(t, "one", images[0].PublicID)
	assert.Equal(t, 1, images[1].Order)

	// the shape an insert wrote before the round trip
	typed := bson.M{"images": []models.CampaignImage{{URL: "u", PublicID: "p", Order: 0}}}
	assert.Len(t, imagesFromDoc(typed), 1)
}

func TestNormalizeCampaignNilDocument(t *testing.T) {
	resp := normalizeCampaign(nil, nil)

	assert.Equal(t, "", resp["_id"])
	assert.Equal(t, []gin.H{}, resp["images"])
	assert.Equal(t, models.CampaignTypeVolunteer, resp["type"])
	assert.Equal(t, models.CampaignStatusUpcoming, resp["status"])
	assert.Equal(t, "ADMIN", resp["createdBy"].(gin.H)["role"])
}

func TestNormalizeCampaignDefaults(t *testing.T) {
	resp := normalizeCampaign(bson.M{"title": "বৃক্ষরোপণ অভিযান"}, nil)

	assert.Equal(t, "বৃক্ষরোপণ অভিযান", resp["title"])
	assert.Equal(t, []gin.H{}, resp["images"])
	assert.Equal(t, 0, resp["registeredVolunteers"])
	assert.Equal(t, 0, resp["priority"])
	assert.Equal(t, models.CampaignStatusUpcoming, resp["status"])
	assert.NotContains(t, resp, "endDate")
	assert.NotContains(t, resp, "volunteerLimit")
}

func TestNormalizeCampaignOptionalFields(t *testing.T) {
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	resp := normalizeCampaign(bson.M{
		"endDate":        end,
		"volunteerLimit": int32(50),
	}, nil)

	require.Contains(t, resp, "endDate")
	assert.True(t, end.Equal(*resp["endDate"].(*time.Time)))
	assert.Equal(t, 50, resp["volunteerLimit"])
}

func TestResolveCreatedByEmbedded(t *testing.T) {
	ctx := context.Background()
	oid := primitive.NewObjectID()

	creator := resolveCreatedBy(ctx, bson.M{
		"_id":   oid,
		"name":  "আব্দুল করিম",
		"email": "karim@example.com",
	})

	assert.Equal(t, oid.Hex(), creator["_id"])
	assert.Equal(t, "আব্দুল করিম", creator["name"])
	assert.Equal(t, "ADMIN", creator["role"])
}

func TestResolveCreatedByUnknownShape(t *testing.T) {
	ctx := context.Background()

	creator := resolveCreatedBy(ctx, nil)
	assert.Equal(t, "", creator["_id"])
	assert.Equal(t, "ADMIN", creator["role"])

	creator = resolveCreatedBy(ctx, "not-a-hex-id")
	assert.Equal(t, "", creator["_id"])
	assert.Equal(t, "ADMIN", creator["role"])
}

func TestCoerceDate(t *testing.T) {
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	got, err := coerceDate("2026-01-15")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = coerceDate(want)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = coerceDate(primitive.NewDateTimeFromTime(want))
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	_, err = coerceDate(nil)
	assert.Error(t, err)

	_, err = coerceDate("15/01/2026")
	assert.Error(t, err)
}
