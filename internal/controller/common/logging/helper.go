package logginghelper

import (
	"github.com/altiguard/altiguard/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogReceived(record *domain.LogRecord) {
	log.WithFields(log.Fields{
		"api_key": record.ApiKey,
	}).Info("Received log via HTTP")
}

func LogStored(record *domain.LogRecord) {
	log.WithFields(log.Fields{
		"api_key": record.ApiKey,
		"id":      record.Id,
	}).Info("Log stored successfully")
}

func LogError(record *domain.LogRecord, err error) {
	log.WithFields(log.Fields{
		"api_key": record.ApiKey,
		"error":   err,
	}).Error("Failed to store log")
}
