package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-api/pkg/resource"
)

// Open prepares the gorm pool without pinging, so a database that is down at startup
// is reported by the health schedule instead of aborting the process.
func Open() (*gorm.DB, error) {
	return gorm.Open(postgres.Open(DSN()), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
}

func DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s search_path=%s",
		resource.GetString("app.db.postgres.host"),
		resource.GetString("app.db.postgres.username"),
		resource.GetString("app.db.postgres.password"),
		resource.GetString("app.db.postgres.database"),
		resource.GetString("app.db.postgres.port"),
		resource.GetString("app.db.postgres.ssl-mode"),
		resource.GetString("app.db.postgres.schema"),
	)
}
