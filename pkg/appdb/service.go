// AppDB holds everything the dashboard persists between sessions: user
// accounts, report jobs and report schedules. Entity data (zones, meters,
// events) deliberately never lands here; it always comes from the fixture
// loader so the dashboard stays stateless about the water network itself.
package appdb

import (
	"database/sql"
	"embed"
	"log"
	"sync"

	"github.com/NotCoffee418/dbmigrator"
	"github.com/aquawatch/aquawatch_backend/pkg/pathing"

	_ "modernc.org/sqlite"
)

var (
	db   *sql.DB
	once sync.Once
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// InitializeDatabase opens the store and applies pending migrations. Each
// binary that persists anything calls this once before serving.
func InitializeDatabase() {
	// Touch the file so the migrator has a database to version
	db := GetDB()
	_, err := db.Exec("SELECT 1;")
	if err != nil {
		log.Printf("Warning: could not touch app db: %v", err)
	}

	dbmigrator.SetDatabaseType(dbmigrator.SQLite)
	<-dbmigrator.MigrateUpCh(
		db,
		migrationFS,
		"migrations",
	)
}

// GetDB returns the process-wide handle to the sqlite file under the data dir.
func GetDB() *sql.DB {
	once.Do(func() {
		var err error
		db, err = sql.Open("sqlite", pathing.GetAppDbPath())
		if err != nil {
			log.Fatal(err)
		}
		if err = db.Ping(); err != nil {
			log.Fatal(err)
		}
	})
	return db
}
