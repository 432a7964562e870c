package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"

	"Feni2Backend/config/db"
	"Feni2Backend/models"
	"Feni2Backend/util"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily campaign status refresh...")
		RefreshCampaignStatuses(context.Background())
	})

	c.Start()
}

/*
* Advance campaign statuses from their own dates. Only the two forward
* moves are automated; CANCELLED and manually set statuses are left alone.
 */
func RefreshCampaignStatuses(ctx context.Context) {
	now := time.Now()
	collection := db.OpenCollection(util.CampaignCollection)

	started, err := db.UpdateMany(ctx, collection,
		bson.M{
			"status":    models.CampaignStatusUpcoming,
			"startDate": bson.M{"$lte": now},
		},
		bson.M{"$set": bson.M{"status": models.CampaignStatusOngoing, "updatedAt": now}},
	)
	if err != nil {
		log.Println("Error moving campaigns to ONGOING:", err)
	} else if started.ModifiedCount > 0 {
		log.Println("Campaigns moved to ONGOING:", started.ModifiedCount)
	}

	ended, err := db.UpdateMany(ctx, collection,
		bson.M{
			"status":  models.CampaignStatusOngoing,
			"endDate": bson.M{"$lt": now},
		},
		bson.M{"$set": bson.M{"status": models.CampaignStatusCompleted, "updatedAt": now}},
	)
	if err != nil {
		log.Println("Error moving campaigns to COMPLETED:", err)
	} else if ended.ModifiedCount > 0 {
		log.Println("Campaigns moved to COMPLETED:", ended.ModifiedCount)
	}
}
