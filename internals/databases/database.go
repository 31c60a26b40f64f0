package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"siwes_backend/internals/configs"
	attendanceModel "siwes_backend/internals/features/siwes/attendance/model"
	gradingModel "siwes_backend/internals/features/siwes/grading/model"
	logbookModel "siwes_backend/internals/features/siwes/logbook/model"
	studentModel "siwes_backend/internals/features/siwes/students/model"
	supervisorModel "siwes_backend/internals/features/siwes/supervisors/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	// Full DSN with statement_timeout; keep PreferSimpleProtocol for PgBouncer
	// transaction pooling.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=siwes&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// Uniqueness races (check-in, week upsert, grade upsert) must surface
		// as gorm.ErrDuplicatedKey so controllers can take the conflict path.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// light touch so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// Migrate creates/updates the SIWES tables. The unique indexes declared on
// the models ((student, date), (student, week_number), (student, supervisor))
// are the only schema-level invariants the core relies on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&studentModel.StudentModel{},
		&supervisorModel.SupervisorModel{},
		&supervisorModel.SupervisorAssignmentModel{},
		&attendanceModel.AttendanceRecordModel{},
		&logbookModel.LogbookWeekModel{},
		&gradingModel.GradeModel{},
	)
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
