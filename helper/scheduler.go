package helper

import (
	"log"
	"time"

	"ticket_marketplace/database"
	"ticket_marketplace/model"

	"github.com/go-co-op/gocron/v2"
)

var notificationScheduler gocron.Scheduler

// PurgeReadNotifications deletes inbox records that were read more than 30
// days ago.
func PurgeReadNotifications() {
	db := database.DB
	cutoff := time.Now().AddDate(0, 0, -30)

	result := db.Where("read_at IS NOT NULL AND read_at < ?", cutoff).Delete(&model.Notification{})
	if result.Error != nil {
		log.Printf("notification purge failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("purged %d read notifications", result.RowsAffected)
	}
}

func StartNotificationScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	notificationScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(PurgeReadNotifications),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("notification cleanup scheduler started (03:00)")
}

func StopNotificationScheduler() {
	if notificationScheduler != nil {
		_ = notificationScheduler.Shutdown()
	}
}
