package doctor

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Doctor is referenced by appointments through its id only; the scheduling
// engine consults this package solely to confirm existence.
type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	FirstName     string `gorm:"column:first_name;type:varchar(100);not null"`
	LastName      string `gorm:"column:last_name;type:varchar(100);not null"`
	Specialty     string `gorm:"column:specialty;type:varchar(100);not null;index"`
	LicenseNumber string `gorm:"column:license_number;type:varchar(50)"`
}

func (Doctor) TableName() string {
	return "clinical.doctors"
}

func (d *Doctor) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

type CreateDoctorCommand struct {
	FirstName     string
	LastName      string
	Specialty     string
	LicenseNumber string
}

type ListDoctorsQuery struct {
	Specialty *string
	Page      int
	PageSize  int
}

type PagedDoctors struct {
	Doctors    []*Doctor
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}
