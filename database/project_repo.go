package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project, most recently created first
func (r *ProjectRepo) FindAll(ctx context.Context) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&projects).Error
	return projects, err
}

// Count returns the number of stored projects
func (r *ProjectRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&count).Error
	return count, err
}

// AddAll inserts projects with a single statement, ids assigned in slice order
func (r *ProjectRepo) AddAll(ctx context.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&projects).Error
}
