package postgres

import (
	"database/sql"
	"fmt"
	"time"

	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Las structs de este archivo sólo describen el esquema para AutoMigrate.
// Las consultas van con SQL plano en cada repo.

type userRow struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:varchar(200);not null;default:''"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (userRow) TableName() string { return "users" }

type groupRow struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	OwnerUserID string    `gorm:"type:uuid;index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (groupRow) TableName() string { return "pet_groups" }

type userGroupRow struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:ux_user_groups_user_group"`
	GroupID     string    `gorm:"type:uuid;not null;uniqueIndex:ux_user_groups_user_group;index"`
	RoleInGroup string    `gorm:"type:varchar(50);not null;default:''"`
	IsOwner     bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (userGroupRow) TableName() string { return "user_groups" }

type petRow struct {
	ID        string     `gorm:"type:uuid;primaryKey"`
	GroupID   string     `gorm:"type:uuid;index;not null"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Species   string     `gorm:"type:varchar(20);not null"`
	Breed     string     `gorm:"type:varchar(100);not null;default:''"`
	Sex       string     `gorm:"type:varchar(20);not null"`
	Birthday  *time.Time `gorm:"type:date"`
	Notes     string     `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

func (petRow) TableName() string { return "pets" }

type scheduleRow struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	PetID       string    `gorm:"type:uuid;index;not null"`
	UserID      string    `gorm:"type:uuid;not null"`
	AssigneeID  string    `gorm:"type:varchar(36);not null;default:''"`
	Category    string    `gorm:"type:varchar(20);not null"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Body        string    `gorm:"type:text;not null;default:''"`
	Place       string    `gorm:"type:varchar(200);not null;default:''"`
	DueDate     time.Time `gorm:"type:timestamptz;not null"`
	IsCompleted bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (scheduleRow) TableName() string { return "schedules" }

type recordRow struct {
	ID        string     `gorm:"type:uuid;primaryKey"`
	PetID     string     `gorm:"type:uuid;index;not null"`
	UserID    string     `gorm:"type:uuid;not null"`
	Title     string     `gorm:"type:varchar(200);not null"`
	Body      string     `gorm:"type:text;not null;default:''"`
	IsPublic  bool       `gorm:"not null;default:false;index"`
	DeletedAt *time.Time `gorm:"type:timestamptz"`
	CreatedAt time.Time  `gorm:"not null;index"`
	UpdatedAt time.Time  `gorm:"not null"`
}

func (recordRow) TableName() string { return "records" }

type monitoringRow struct {
	ID                string    `gorm:"type:uuid;primaryKey"`
	PetID             string    `gorm:"type:uuid;not null;uniqueIndex:ux_monitorings_pet_date"`
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:ux_monitorings_pet_date"`
	Weight            float64   `gorm:"not null;default:0"`
	Vomit             bool      `gorm:"not null;default:false"`
	AmPill            bool      `gorm:"not null;default:false"`
	PmPill            bool      `gorm:"not null;default:false"`
	Urination         int       `gorm:"not null;default:0"`
	Defecation        int       `gorm:"not null;default:0"`
	WalkCnt           int       `gorm:"not null;default:0"`
	Notes             string    `gorm:"type:text;not null;default:''"`
	CustomSymptom     *bool
	CustomSymptomName string    `gorm:"type:varchar(100);not null;default:''"`
	CustomInt         *int
	CustomIntName     string    `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (monitoringRow) TableName() string { return "monitorings" }

// Migrate crea/actualiza las tablas reutilizando la conexión pgx ya abierta.
func Migrate(db *sql.DB) error {
	gdb, err := gorm.Open(gormpg.New(gormpg.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("gorm open: %w", err)
	}

	if err := gdb.AutoMigrate(
		&userRow{},
		&groupRow{},
		&userGroupRow{},
		&petRow{},
		&scheduleRow{},
		&recordRow{},
		&monitoringRow{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
