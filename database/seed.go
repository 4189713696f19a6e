package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog/log"
)

// Seed inserts the demonstration rows into each seedable table that is empty.
// A table that already holds at least one row is left untouched, so running
// Seed repeatedly yields the same row counts as running it once.
func (d Database) Seed(ctx context.Context) error {
	if err := d.seedProjects(ctx); err != nil {
		return err
	}
	return d.seedTestimonials(ctx)
}

func (d Database) seedProjects(ctx context.Context) error {
	count, err := d.projectRepo.Count(ctx)
	if err != nil {
		return errs.NewSeedError("projects", err)
	}
	if count > 0 {
		return nil
	}

	rows := SeedProjects()
	if err := d.projectRepo.AddAll(ctx, rows); err != nil {
		return errs.NewSeedError("projects", err)
	}
	log.Info().Int("rows", len(rows)).Msg("Seeded projects")
	return nil
}

func (d Database) seedTestimonials(ctx context.Context) error {
	count, err := d.testimonialRepo.Count(ctx)
	if err != nil {
		return errs.NewSeedError("testimonials", err)
	}
	if count > 0 {
		return nil
	}

	rows := SeedTestimonials()
	if err := d.testimonialRepo.AddAll(ctx, rows); err != nil {
		return errs.NewSeedError("testimonials", err)
	}
	log.Info().Int("rows", len(rows)).Msg("Seeded testimonials")
	return nil
}

// SeedProjects returns a fresh copy of the demonstration projects in insertion order.
func SeedProjects() []models.Project {
	return []models.Project{
		{
			Title:        "E-Commerce Platform",
			Description:  "A full-featured online store with payment integration and admin dashboard.",
			Technologies: "React, Node.js, Express, MySQL, Tailwind",
			GithubLink:   strPtr("https://github.com"),
			LiveLink:     strPtr("https://demo.com"),
			ImageURL:     strPtr("https://picsum.photos/seed/ecommerce/800/600"),
		},
		{
			Title:        "Task Management App",
			Description:  "Collaborative task tracker with real-time updates and team management.",
			Technologies: "React, Socket.io, Node.js, SQLite",
			GithubLink:   strPtr("https://github.com"),
			LiveLink:     strPtr("https://demo.com"),
			ImageURL:     strPtr("https://picsum.photos/seed/tasks/800/600"),
		},
		{
			Title:        "AI Content Generator",
			Description:  "A platform that uses Gemini API to generate creative content and code.",
			Technologies: "React, Gemini API, Express, Tailwind",
			GithubLink:   strPtr("https://github.com"),
			LiveLink:     strPtr("https://demo.com"),
			ImageURL:     strPtr("https://picsum.photos/seed/ai/800/600"),
		},
	}
}

// SeedTestimonials returns a fresh copy of the demonstration testimonials in insertion order.
func SeedTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:      "John Doe",
			Role:      "CEO at TechCorp",
			Content:   "Eyaderaddis is a brilliant developer who delivered our project ahead of schedule with exceptional quality.",
			AvatarURL: strPtr("https://i.pravatar.cc/150?u=john"),
		},
		{
			Name:      "Sarah Smith",
			Role:      "Product Manager",
			Content:   "Highly professional and great communication. The final product exceeded our expectations.",
			AvatarURL: strPtr("https://i.pravatar.cc/150?u=sarah"),
		},
	}
}

func strPtr(s string) *string {
	return &s
}
