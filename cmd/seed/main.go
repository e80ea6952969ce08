package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"rockschool/internal/config"
	"rockschool/internal/db"
	"rockschool/internal/model"
	"rockschool/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.ClassListing{},
		&model.InstructorListing{},
		&model.Review{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	classRepo := repository.NewClassRepository(gormDB)
	instructorRepo := repository.NewInstructorRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)

	classes := []model.ClassListing{
		{
			Name:             "Guitar Fundamentals",
			AvailableSeats:   12,
			Price:            decimal.NewFromFloat(49.99),
			InstructorName:   "Marty Schwartz",
			InstructorEmail:  "marty@schoolofrock.example",
			EnrolledStudents: 20,
		},
		{
			Name:             "Drum Grooves",
			AvailableSeats:   8,
			Price:            decimal.NewFromFloat(59.99),
			InstructorName:   "Nina Ramirez",
			InstructorEmail:  "nina@schoolofrock.example",
			EnrolledStudents: 5,
		},
		{
			Name:             "Vocal Coaching",
			AvailableSeats:   15,
			Price:            decimal.NewFromFloat(39.99),
			InstructorName:   "Lena Hart",
			InstructorEmail:  "lena@schoolofrock.example",
			EnrolledStudents: 1,
		},
	}
	for i := range classes {
		if err := classRepo.Create(ctx, &classes[i]); err != nil {
			log.Fatalf("Failed to seed class %q: %v", classes[i].Name, err)
		}
	}
	log.Printf("Seeded %d classes", len(classes))

	instructors := []model.InstructorListing{
		{
			Name:             "Marty Schwartz",
			Email:            "marty@schoolofrock.example",
			NumberOfClasses:  3,
			EnrolledStudents: 42,
		},
		{
			Name:             "Nina Ramirez",
			Email:            "nina@schoolofrock.example",
			NumberOfClasses:  2,
			EnrolledStudents: 17,
		},
	}
	for i := range instructors {
		if err := instructorRepo.Create(ctx, &instructors[i]); err != nil {
			log.Fatalf("Failed to seed instructor %q: %v", instructors[i].Name, err)
		}
	}
	log.Printf("Seeded %d instructors", len(instructors))

	reviews := []model.Review{
		{Name: "Ava", Rating: 5, Comment: "My kid went from air guitar to actual guitar in a month."},
		{Name: "Ben", Rating: 4, Comment: "Great instructors, booking was painless."},
	}
	for i := range reviews {
		if err := reviewRepo.Create(ctx, &reviews[i]); err != nil {
			log.Fatalf("Failed to seed review by %q: %v", reviews[i].Name, err)
		}
	}
	log.Printf("Seeded %d reviews", len(reviews))

	log.Println("Seed completed successfully!")
}
