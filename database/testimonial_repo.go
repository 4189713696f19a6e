package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db}
}

// FindAll returns every testimonial, most recently created first
func (r *TestimonialRepo) FindAll(ctx context.Context) ([]models.Testimonial, error) {
	testimonials := make([]models.Testimonial, 0)
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&testimonials).Error
	return testimonials, err
}

func (r *TestimonialRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Testimonial{}).Count(&count).Error
	return count, err
}

func (r *TestimonialRepo) AddAll(ctx context.Context, testimonials []models.Testimonial) error {
	if len(testimonials) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&testimonials).Error
}
