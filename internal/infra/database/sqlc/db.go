package sqlc

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"todo-api/pkg/resource"
)

// Open returns a lib/pq backed pool. sql.Open does not dial.
func Open() (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		resource.GetString("app.db.postgres.host"),
		resource.GetString("app.db.postgres.port"),
		resource.GetString("app.db.postgres.username"),
		resource.GetString("app.db.postgres.password"),
		resource.GetString("app.db.postgres.database"),
		resource.GetString("app.db.postgres.ssl-mode"),
		resource.GetString("app.db.postgres.schema"),
	)

	return sql.Open("postgres", dsn)
}
