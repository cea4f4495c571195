package main

import (
	"database/sql"
	"fmt"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"os"
	"time"
)

// Downloads every uploaded recording into a folder per user, with names that
// say when the recording started and which RecordingVersion can play it.
func main() {
	DownloadRecordings()
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)

	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"user, " +
		"release_version, " +
		"recording_version, " +
		"id, " +
		"recording " +
		"FROM recordings")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.user, &row.releaseVersion,
			&row.recordingVersion, &row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())

	for i := range dbRows {
		dir := dbRows[i].user
		_ = os.Mkdir(dir, 0755)
		WriteFile(RecordingFilename(dbRows[i]), dbRows[i].data)
	}
	fmt.Printf("downloaded %d recordings\n", len(dbRows))
}

// RecordingFilename is user/YYYYMMDD-HHMMSS.smoke-<recording version>.
func RecordingFilename(row dbRow) string {
	m := row.startMoment
	return fmt.Sprintf("%s/%d%02d%02d-%02d%02d%02d.smoke-%d", row.user,
		m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
		row.recordingVersion)
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("SMOKE_DBUSER"),
		Passwd:               os.Getenv("SMOKE_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("SMOKE_DBADDR"),
		DBName:               os.Getenv("SMOKE_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	startMoment      time.Time
	user             string
	releaseVersion   int64
	recordingVersion int64
	id               uuid.UUID
	data             []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
