package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Vipul160305/placetrack/internal/config"
	"github.com/Vipul160305/placetrack/internal/database"
	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/domain/application"
	"github.com/Vipul160305/placetrack/internal/domain/listing"
	"github.com/Vipul160305/placetrack/internal/repository/postgres"
	"github.com/Vipul160305/placetrack/internal/security"
)

func main() {
	cfg := config.Load()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:          cfg.PostgresDSN,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	})
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	for _, table := range []string{"applications", "listings", "accounts"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("clear %s: %v", table, err)
		}
	}
	fmt.Println("cleared existing data")

	accounts := postgres.NewAccountRepository(db)
	listings := postgres.NewListingRepository(db)
	applications := postgres.NewApplicationRepository(db)

	demoHash := mustHash("demo123")
	studentHash := mustHash("Student@123")

	mustAccount(ctx, accounts, account.Account{
		Name: "Admin User", Email: "admin@demo.com", PasswordHash: demoHash,
		Role: account.RoleAdmin, Branch: account.BranchCSE, CGPA: 10,
	})
	officer := mustAccount(ctx, accounts, account.Account{
		Name: "Dr. Rajesh Kumar", Email: "tpo@demo.com", PasswordHash: demoHash,
		Role: account.RoleOfficer, Branch: account.BranchCSE, CGPA: 10,
	})
	demoStudent := mustAccount(ctx, accounts, account.Account{
		Name: "Demo Student", Email: "student@demo.com", PasswordHash: demoHash,
		Role: account.RoleStudent, Branch: account.BranchCSE, CGPA: 8.2,
		Skills: []string{"JavaScript", "React", "Node.js"},
	})

	students := []account.Account{
		{Name: "Alice Johnson", Email: "alice@student.com", Branch: account.BranchCSE, CGPA: 8.5, Skills: []string{"JavaScript", "React", "Node.js", "MongoDB"}},
		{Name: "Bob Smith", Email: "bob@student.com", Branch: account.BranchECE, CGPA: 7.8, Skills: []string{"Python", "Machine Learning", "Arduino"}},
		{Name: "Charlie Brown", Email: "charlie@student.com", Branch: account.BranchCSE, CGPA: 9.1, Skills: []string{"Java", "Spring Boot", "MySQL", "Docker"}, IsPlaced: true},
		{Name: "Diana Prince", Email: "diana@student.com", Branch: account.BranchIT, CGPA: 7.2, Skills: []string{"HTML", "CSS", "Angular", "TypeScript"}},
		{Name: "Ethan Hunt", Email: "ethan@student.com", Branch: account.BranchME, CGPA: 6.9, Skills: []string{"AutoCAD", "SolidWorks", "MATLAB"}},
		{Name: "Priya Sharma", Email: "priya@student.com", Branch: account.BranchIT, CGPA: 8.8, Skills: []string{"Python", "Django", "PostgreSQL"}},
		{Name: "Rahul Verma", Email: "rahul@student.com", Branch: account.BranchECE, CGPA: 7.5, Skills: []string{"Embedded C", "VLSI", "MATLAB"}},
	}
	created := make([]*account.Account, 0, len(students))
	for _, s := range students {
		s.Role = account.RoleStudent
		s.PasswordHash = studentHash
		created = append(created, mustAccount(ctx, accounts, s))
	}

	seedListings := []listing.Listing{
		{
			CompanyName: "Google India", Role: "Software Engineer", Package: 24,
			Description: "Join Google's engineering team to build products used by billions.",
			Location:    "Bangalore", MinCGPA: 8.0,
			EligibleBranches: []account.Branch{account.BranchCSE, account.BranchIT, account.BranchECE},
			RequiredSkills:   []string{"Data Structures", "Algorithms", "JavaScript"},
			Rounds: []listing.Round{
				{Name: "Online Test", Type: listing.RoundAptitude},
				{Name: "Technical Round 1", Type: listing.RoundTechnical},
				{Name: "Technical Round 2", Type: listing.RoundTechnical},
				{Name: "HR Round", Type: listing.RoundHR},
			},
			Deadline: dateOf(2026, time.March, 31),
		},
		{
			CompanyName: "Infosys", Role: "Systems Engineer", Package: 6.5,
			Description: "Entry-level engineering role with comprehensive training program.",
			Location:    "Pune", MinCGPA: 6.5,
			EligibleBranches: []account.Branch{account.BranchCSE, account.BranchIT, account.BranchECE, account.BranchEEE, account.BranchME, account.BranchCE},
			RequiredSkills:   []string{"Programming Basics", "Problem Solving"},
			Rounds: []listing.Round{
				{Name: "Aptitude Test", Type: listing.RoundAptitude},
				{Name: "Technical Interview", Type: listing.RoundTechnical},
				{Name: "HR Interview", Type: listing.RoundHR},
			},
			Deadline: dateOf(2026, time.April, 15),
		},
		{
			CompanyName: "TCS", Role: "Associate Software Engineer", Package: 7,
			Description: "Large-scale enterprise software development with global exposure.",
			Location:    "Chennai", MinCGPA: 7.0,
			EligibleBranches: []account.Branch{account.BranchCSE, account.BranchIT, account.BranchECE},
			RequiredSkills:   []string{"Java", "SQL", "OOP Concepts"},
			Rounds: []listing.Round{
				{Name: "TCS NQT", Type: listing.RoundAptitude},
				{Name: "Coding Round", Type: listing.RoundCoding},
				{Name: "HR Interview", Type: listing.RoundHR},
			},
			Deadline: dateOf(2026, time.April, 30),
		},
		{
			CompanyName: "Amazon", Role: "SDE-1", Package: 18,
			Description: "Build the next generation of Amazon cloud and e-commerce services.",
			Location:    "Hyderabad", MinCGPA: 7.5,
			EligibleBranches: []account.Branch{account.BranchCSE, account.BranchIT},
			RequiredSkills:   []string{"DSA", "System Design", "Java/Python/C++"},
			Rounds: []listing.Round{
				{Name: "Online Assessment", Type: listing.RoundAptitude},
				{Name: "Coding Interview", Type: listing.RoundCoding},
				{Name: "Bar Raiser", Type: listing.RoundTechnical},
				{Name: "HR", Type: listing.RoundHR},
			},
			Deadline: dateOf(2026, time.March, 20),
		},
		{
			CompanyName: "Microsoft", Role: "Software Engineer II", Package: 20,
			Description: "Work on cutting-edge Microsoft products and Azure cloud platform.",
			Location:    "Noida", MinCGPA: 7.5,
			EligibleBranches: []account.Branch{account.BranchCSE, account.BranchIT, account.BranchECE},
			RequiredSkills:   []string{"C#", ".NET", "Azure", "Data Structures"},
			Rounds: []listing.Round{
				{Name: "Online Assessment", Type: listing.RoundAptitude},
				{Name: "Technical Round 1", Type: listing.RoundTechnical},
				{Name: "Technical Round 2", Type: listing.RoundTechnical},
				{Name: "HR", Type: listing.RoundHR},
			},
			Deadline: dateOf(2026, time.May, 1),
		},
	}
	createdListings := make([]*listing.Listing, 0, len(seedListings))
	for _, l := range seedListings {
		l.CreatedBy = officer.ID
		saved, err := listings.Create(ctx, l)
		if err != nil {
			log.Fatalf("seed listing %s: %v", l.CompanyName, err)
		}
		createdListings = append(createdListings, saved)
	}

	seedApplications := []application.Application{
		{StudentID: created[0].ID, ListingID: createdListings[0].ID, Status: application.StatusTechnical, CurrentRound: "Technical Round 1"},
		{StudentID: created[0].ID, ListingID: createdListings[1].ID, Status: application.StatusApplied},
		{StudentID: created[2].ID, ListingID: createdListings[0].ID, Status: application.StatusSelected, CurrentRound: "Selected"},
		{StudentID: created[1].ID, ListingID: createdListings[1].ID, Status: application.StatusHR, CurrentRound: "HR Interview"},
		{StudentID: created[3].ID, ListingID: createdListings[1].ID, Status: application.StatusAptitude, CurrentRound: "Aptitude Test"},
		{StudentID: demoStudent.ID, ListingID: createdListings[0].ID, Status: application.StatusApplied},
		{StudentID: created[5].ID, ListingID: createdListings[3].ID, Status: application.StatusTechnical, CurrentRound: "Bar Raiser"},
		{StudentID: created[5].ID, ListingID: createdListings[4].ID, Status: application.StatusRejected},
	}
	for _, a := range seedApplications {
		if _, err := applications.Create(ctx, a); err != nil {
			log.Fatalf("seed application: %v", err)
		}
	}

	fmt.Println("seed data inserted")
	fmt.Println("demo accounts (password demo123): admin@demo.com, tpo@demo.com, student@demo.com")
	fmt.Println("student accounts (password Student@123): alice@student.com, bob@student.com, charlie@student.com, ...")
}

func mustAccount(ctx context.Context, repo account.Repository, acc account.Account) *account.Account {
	saved, err := repo.Create(ctx, acc)
	if err != nil {
		log.Fatalf("seed account %s: %v", acc.Email, err)
	}
	return saved
}

func mustHash(password string) string {
	hash, err := security.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	return hash
}

func dateOf(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
