package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/repository"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/config"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/database"
)

type seedCourse struct {
	code   string
	title  string
	credit float64
}

var departments = []struct {
	code    string
	name    string
	courses []seedCourse
}{
	{
		code: "CSE",
		name: "Computer Science and Engineering",
		courses: []seedCourse{
			{"CSE 1111", "Structured Programming Language", 3},
			{"CSE 2215", "Data Structures and Algorithms I", 3},
			{"CSE 2233", "Theory of Computation", 3},
			{"CSE 3411", "Database Management Systems", 3},
			{"CSE 4509", "Operating System Concepts", 3},
		},
	},
	{
		code: "EEE",
		name: "Electrical and Electronic Engineering",
		courses: []seedCourse{
			{"EEE 1001", "Electrical Circuits I", 3},
			{"EEE 2113", "Electronics I", 3},
		},
	},
	{
		code: "BBA",
		name: "Business Administration",
		courses: []seedCourse{
			{"ACT 2111", "Principles of Accounting", 3},
			{"MKT 3113", "Principles of Marketing", 3},
		},
	},
}

func main() {
	var (
		adminEmail    string
		adminPassword string
	)
	flag.StringVar(&adminEmail, "admin-email", "admin@uiu.ac.bd", "Seed admin account email")
	flag.StringVar(&adminPassword, "admin-password", "changeme123", "Seed admin account password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	courseRepo := repository.NewCourseRepository(db)
	for _, dept := range departments {
		department := &models.Department{Code: dept.code, Name: dept.name}
		if err := courseRepo.UpsertDepartment(ctx, department); err != nil {
			log.Fatalf("seed department %s: %v", dept.code, err)
		}
		for _, c := range dept.courses {
			course := &models.Course{
				DepartmentID: department.ID,
				Code:         c.code,
				Title:        c.title,
				Credit:       c.credit,
			}
			if err := courseRepo.UpsertCourse(ctx, course); err != nil {
				log.Fatalf("seed course %s: %v", c.code, err)
			}
		}
		log.Printf("seeded department %s with %d courses", dept.code, len(dept.courses))
	}

	userRepo := repository.NewUserRepository(db)
	if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
		log.Printf("admin %s already exists, skipping", adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}
	admin := &models.User{
		ID:           uuid.NewString(),
		Email:        adminEmail,
		PasswordHash: string(hash),
		FullName:     "Platform Admin",
		Role:         models.RoleAdmin,
		Verified:     true,
		Active:       true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	log.Printf("seeded admin account %s", adminEmail)
}
