package patient

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Patient is referenced by appointments through its id only; the scheduling
// engine consults this package solely to confirm existence.
type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	FirstName   string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName    string    `gorm:"column:last_name;type:varchar(100);not null"`
	DateOfBirth time.Time `gorm:"column:date_of_birth;not null"`

	Phone string `gorm:"column:phone;type:varchar(20)"`
	Email string `gorm:"column:email;type:varchar(255)"`
}

func (Patient) TableName() string {
	return "clinical.patients"
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p *Patient) Age(now time.Time) int {
	years := now.Year() - p.DateOfBirth.Year()
	if now.Month() < p.DateOfBirth.Month() ||
		(now.Month() == p.DateOfBirth.Month() && now.Day() < p.DateOfBirth.Day()) {
		years--
	}
	return years
}

type CreatePatientCommand struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Phone       string
	Email       string
}

type ListPatientsQuery struct {
	Search   string
	Page     int
	PageSize int
}

type PagedPatients struct {
	Patients   []*Patient
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}
