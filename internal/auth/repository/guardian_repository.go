package repository

import (
	"time"

	authdomain "edclass-backend/internal/auth/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// guardianRepository implements GuardianRepository interface
type guardianRepository struct {
	db *gorm.DB
}

// NewGuardianRepository creates a new instance of guardianRepository
func NewGuardianRepository(db *gorm.DB) GuardianRepository {
	return &guardianRepository{
		db: db,
	}
}

func (r *guardianRepository) Link(studentID, parentID string) error {
	link := &authdomain.GuardianLink{
		StudentID: studentID,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}
	// Re-registering an existing link is a no-op.
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error
}

func (r *guardianRepository) GuardiansOf(studentID string) ([]authdomain.User, error) {
	var links []authdomain.GuardianLink
	if err := r.db.Where("student_id = ?", studentID).Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}

	parentIDs := make([]string, 0, len(links))
	for _, link := range links {
		parentIDs = append(parentIDs, link.ParentID)
	}

	var parents []authdomain.User
	if err := r.db.Where("id IN ?", parentIDs).Find(&parents).Error; err != nil {
		return nil, err
	}
	return parents, nil
}

func (r *guardianRepository) KidsOf(parentID string) ([]authdomain.User, error) {
	var links []authdomain.GuardianLink
	if err := r.db.Where("parent_id = ?", parentID).Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}

	studentIDs := make([]string, 0, len(links))
	for _, link := range links {
		studentIDs = append(studentIDs, link.StudentID)
	}

	var kids []authdomain.User
	if err := r.db.Where("id IN ?", studentIDs).Find(&kids).Error; err != nil {
		return nil, err
	}
	return kids, nil
}
