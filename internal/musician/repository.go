package musician

import (
	"gorm.io/gorm"
)

// Repository encapsulates store operations for musicians and attendance rows.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *Musician) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindAll() ([]Musician, error) {
	var list []Musician
	err := r.DB.Order("name asc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Musician, error) {
	var m Musician
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Update(m *Musician) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Delete(m *Musician) error {
	return r.DB.Delete(m).Error
}

// CreateAttendance inserts one lineup row for an engagement.
func (r *Repository) CreateAttendance(a *Attendance) error {
	return r.DB.Create(a).Error
}

// AttendanceByEngagement lists the lineup of one engagement.
func (r *Repository) AttendanceByEngagement(engagementID uint) ([]Attendance, error) {
	var list []Attendance
	err := r.DB.Where("engagement_id = ?", engagementID).Order("id asc").Find(&list).Error
	return list, err
}

func (r *Repository) FindAttendanceByID(id uint) (*Attendance, error) {
	var a Attendance
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) UpdateAttendance(a *Attendance) error {
	return r.DB.Save(a).Error
}

func (r *Repository) DeleteAttendance(a *Attendance) error {
	return r.DB.Delete(a).Error
}
