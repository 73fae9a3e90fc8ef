package logginghelper

import (
	"github.com/steptrek/steptrek/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogReceived(username, text string) {
	log.WithFields(log.Fields{
		"username": username,
		"text":     text,
	}).Info("Received bot message")
}

func LogRecorded(entry *domain.StepLog, id int) {
	log.WithFields(log.Fields{
		"username": entry.Username,
		"steps":    entry.StepCount,
		"log_date": entry.LogDate.Format("2006-01-02"),
		"id":       id,
	}).Info("Step log saved successfully")
}

func LogError(username string, err error) {
	log.WithFields(log.Fields{
		"username": username,
		"error":    err,
	}).Error("Failed to handle bot command")
}
