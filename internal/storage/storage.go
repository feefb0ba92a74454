package storage

import (
	"sync"

	"vazifa/internal/config"
	audit_logs_models "vazifa/internal/features/audit_logs/models"
	projects_models "vazifa/internal/features/projects/models"
	tasks_models "vazifa/internal/features/tasks/models"
	users_models "vazifa/internal/features/users/models"
	"vazifa/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(connect)
	return db
}

func connect() {
	log := logger.GetLogger()
	env := config.GetEnv()

	var dialector gorm.Dialector
	if env.IsTesting {
		// In-memory database so tests need no external infrastructure
		dialector = sqlite.Open(env.DatabaseDsn)
	} else {
		dialector = postgres.Open(env.DatabaseDsn)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		panic(err)
	}

	db = connection

	if err := runMigrations(); err != nil {
		log.Error("Failed to run database migrations", "error", err)
		panic(err)
	}
}

func runMigrations() error {
	return db.AutoMigrate(
		&users_models.User{},
		&users_models.SecretKey{},
		&projects_models.Project{},
		&projects_models.Membership{},
		&tasks_models.Task{},
		&tasks_models.TaskCollaborator{},
		&audit_logs_models.AuditLog{},
	)
}
