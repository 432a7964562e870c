package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"Feni2Backend/models"
	"Feni2Backend/util"
)

func validNoticeData() map[string]interface{} {
	return map[string]interface{}{
		"title":       "উঠান বৈঠক",
		"description": "ওয়ার্ড পর্যায়ে উঠান বৈঠক অনুষ্ঠিত হবে",
		"location":    "ফুলগাজী বাজার",
		"date":        "2026-05-01",
	}
}

func TestCreateNoticeRequiresFields(t *testing.T) {
	ctx := context.Background()
	for _, field := range []string{"title", "description", "location", "date"} {
		data := validNoticeData()
		delete(data, field)
		_, err := CreateNotice(ctx, data)
		require.Error(t, err, "expected error without %s", field)
		assert.EqualError(t, err, util.NOTICE_FIELDS_REQUIRED)
	}
}

func TestCreateNoticeRejectsOutOfRangePriority(t *testing.T) {
	ctx := context.Background()
	for _, p := range []interface{}{float64(99), "-1", float64(11)} {
		data := validNoticeData()
		data["priority"] = p
		_, err := CreateNotice(ctx, data)
		assert.EqualError(t, err, util.INVALID_PRIORITY, "priority %v", p)
	}
}

func TestCreateNoticeRejectsUnknownType(t *testing.T) {
	data := validNoticeData()
	data["type"] = "urgent"
	_, err := CreateNotice(context.Background(), data)
	assert.EqualError(t, err, util.NOTICE_INVALID_TYPE)
}

func TestTodayRange(t *testing.T) {
	loc := time.FixedZone("BST", 6*60*60)
	now := time.Date(2026, 3, 10, 14, 35, 12, 0, loc)

	start, end := todayRange(now)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), end)
}

func TestTodayNoticeFilter(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	filter := todayNoticeFilter(now)

	window, ok := filter["date"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), window["$gte"])
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), window["$lt"])
}

func TestUpcomingNoticeFilter(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	filter := upcomingNoticeFilter(now)

	window, ok := filter["date"].(bson.M)
	require.True(t, ok)

	// today counts as upcoming, yesterday does not
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), window["$gte"])
	assert.NotContains(t, window, "$lt")
}

func TestNoticeListFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, noticeListFilter(""))
	assert.Equal(t, bson.M{"type": models.NoticeTypeElection}, noticeListFilter(models.NoticeTypeElection))
}

func TestNoticeSortContracts(t *testing.T) {
	sort := noticeListSort()
	require.Len(t, sort, 2)
	assert.Equal(t, "date", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
	assert.Equal(t, "priority", sort[1].Key)
	assert.Equal(t, -1, sort[1].Value)

	sort = todayNoticeSort()
	require.Len(t, sort, 2)
	assert.Equal(t, "priority", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
	assert.Equal(t, "createdAt", sort[1].Key)
	assert.Equal(t, -1, sort[1].Value)

	sort = upcomingNoticeSort()
	require.Len(t, sort, 2)
	assert.Equal(t, "date", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)
	assert.Equal(t, "priority", sort[1].Key)
	assert.Equal(t, -1, sort[1].Value)
}

func TestNormalizeNoticeDefaults(t *testing.T) {
	resp := normalizeNotice(bson.M{"title": "উঠান বৈঠক"})

	assert.Equal(t, "উঠান বৈঠক", resp["title"])
	assert.Equal(t, "", resp["time"])
	assert.Equal(t, "", resp["location"])
	assert.Equal(t, models.NoticeTypeDaily, resp["type"])
	assert.Equal(t, 0, resp["priority"])
	assert.Equal(t, time.Time{}, resp["date"])
}

func TestNormalizeNoticeFullDocument(t *testing.T) {
	date := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	resp := normalizeNotice(bson.M{
		"title":       "নির্বাচনী জনসভা",
		"description": "ফেনী-২ আসনের নির্বাচনী জনসভা অনুষ্ঠিত হবে",
		"date":        date,
		"time":        "বিকাল ৪টা",
		"location":    "ফেনী সরকারি কলেজ মাঠ",
		"type":        models.NoticeTypeElection,
		"priority":    int32(8),
	})

	assert.Equal(t, models.NoticeTypeElection, resp["type"])
	assert.Equal(t, 8, resp["priority"])
	assert.Equal(t, date, resp["date"])
	assert.Equal(t, "বিকাল ৪টা", resp["time"])
}

func TestNoticeLimits(t *testing.T) {
	assert.Equal(t, 10, DefaultUpcomingLimit)
	assert.Equal(t, 20, ImportantNoticeLimit)
}
