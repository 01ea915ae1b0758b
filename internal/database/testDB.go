package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/PiyushSRAI/sun-robotics-launchpad/internal/model"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded fixtures for package tests.
var (
	TestAdminUser m.User

	// TestSeedPassword is the plain password of every seeded user.
	TestSeedPassword = "SeedPass123!"

	// Jobs: 1 and 2 are active, 3 is inactive.
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job

	TestBlog1 m.Blog
	TestBlog2 m.Blog

	TestMessage1 m.ContactMessage
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts the admin account plus sample jobs, blogs and one
// contact message, unless a previous run already seeded them.
func seedTestData(db *DBinstanceStruct) error {
	var jobCount int64
	if err := db.Model(&m.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}

	if jobCount > 0 {
		return loadTestData(db)
	}

	hashedPwd, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return err
	}

	// The startup bootstrap may already have created an admin from env vars;
	// reuse it with the seed password so logins stay deterministic.
	err = db.Where("role = ?", m.RoleAdmin).First(&TestAdminUser).Error
	switch {
	case err == nil:
		TestAdminUser.Password = hashedPwd
		if err := db.Save(&TestAdminUser).Error; err != nil {
			return err
		}
	default:
		TestAdminUser = m.User{
			Username: "admin_user",
			Password: hashedPwd,
			Role:     m.RoleAdmin,
		}
		if err := db.Create(&TestAdminUser).Error; err != nil {
			return err
		}
	}

	jobs := []m.Job{
		{Title: "Robotics Engineer", Department: "Engineering", Location: "Pune", Type: "Full-time",
			Description: "Design and build industrial robot arms", Requirements: "ROS, C++, 3 years experience", Active: true},
		{Title: "Embedded Developer", Department: "Engineering", Location: "Remote", Type: "Remote",
			Description: "Firmware for motor controllers", Requirements: "C, RTOS", Active: true},
		{Title: "Office Manager", Department: "Operations", Location: "Pune", Type: "Full-time",
			Description: "Position filled", Requirements: "", Active: false},
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	TestJob1, TestJob2, TestJob3 = jobs[0], jobs[1], jobs[2]

	blogs := []m.Blog{
		{EditableBlogInfo: m.EditableBlogInfo{Title: "Why we bet on ROS 2", Excerpt: "A look at our stack",
			Content: "<p>Long form content</p>", Category: "Engineering", Author: "Priya", ReadTime: "5 min read"},
			CreatedAt: time.Now().Add(-48 * time.Hour)},
		{EditableBlogInfo: m.EditableBlogInfo{Title: "Factory floor safety", Excerpt: "Cobots and people",
			Content: "<p>More content</p>", Category: "Safety", Author: "Arun", ReadTime: "3 min read"},
			CreatedAt: time.Now().Add(-24 * time.Hour)},
	}
	if err := db.Create(&blogs).Error; err != nil {
		return err
	}
	TestBlog1, TestBlog2 = blogs[0], blogs[1]

	TestMessage1 = m.ContactMessage{
		Name:    "Vendor Corp",
		Email:   "sales@vendor.example",
		Subject: "Partnership",
		Message: "We supply actuators",
	}
	if err := db.Create(&TestMessage1).Error; err != nil {
		return err
	}

	return nil
}

// loadTestData refreshes the exported fixtures from an already-seeded database.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.Where("role = ?", m.RoleAdmin).First(&TestAdminUser).Error; err != nil {
		return err
	}

	var jobs []m.Job
	if err := db.Order("id").Limit(3).Find(&jobs).Error; err != nil {
		return err
	}
	if len(jobs) >= 3 {
		TestJob1, TestJob2, TestJob3 = jobs[0], jobs[1], jobs[2]
	}

	var blogs []m.Blog
	if err := db.Order("id").Limit(2).Find(&blogs).Error; err != nil {
		return err
	}
	if len(blogs) >= 2 {
		TestBlog1, TestBlog2 = blogs[0], blogs[1]
	}

	return db.Order("id").First(&TestMessage1).Error
}
