package system_healthcheck

import (
	"vazifa/internal/storage"
)

type HealthcheckService struct{}

// Check verifies the database connection is alive.
func (s *HealthcheckService) Check() error {
	db, err := storage.GetDb().DB()
	if err != nil {
		return err
	}

	return db.Ping()
}
