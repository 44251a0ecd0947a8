package db

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/config"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Department{},
		&models.Doctor{},
		&models.Patient{},
		&models.AvailabilityWindow{},
		&models.Appointment{},
		&models.Treatment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// At most one non-cancelled appointment per (doctor, date, time). The
	// booking transaction relies on this index, so it cannot be optional.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_active_slot
        ON appointments (doctor_id, date, time)
        WHERE status <> 'Cancelled'
    `).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create slot index")
	}

	seed(db, cfg, log)

	return db
}

// seed creates the predefined admin account and the initial department list
// on an empty database.
func seed(db *gorm.DB, cfg *config.Config, log zerolog.Logger) {
	var admins int64
	db.Model(&models.Admin{}).Count(&admins)
	if admins == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash admin password")
		}

		admin := models.Admin{
			Username:     cfg.AdminUsername,
			Email:        cfg.AdminEmail,
			PasswordHash: string(hashed),
			IsActive:     true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin")
		}
		log.Info().Str("email", admin.Email).Msg("seeded admin account")
	}

	var departments int64
	db.Model(&models.Department{}).Count(&departments)
	if departments == 0 {
		initial := []models.Department{
			{Name: "General Medicine", Description: "General medical consultation and treatment"},
			{Name: "Cardiology", Description: "Heart and cardiovascular system"},
			{Name: "Orthopedics", Description: "Bone, joint, and muscle treatment"},
			{Name: "Pediatrics", Description: "Medical care for infants, children, and adolescents"},
			{Name: "Dermatology", Description: "Skin, hair, and nail treatment"},
			{Name: "Neurology", Description: "Brain and nervous system"},
			{Name: "Gynecology", Description: "Women's reproductive health"},
			{Name: "Ophthalmology", Description: "Eye care and vision"},
		}
		if err := db.Create(&initial).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to seed departments")
		}
		log.Info().Int("count", len(initial)).Msg("seeded departments")
	}
}
