package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"volunteer-hub-backend/internal/config"
	"volunteer-hub-backend/internal/database"
	"volunteer-hub-backend/internal/database/models"
	"volunteer-hub-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed file schema
type OrganizationData struct {
	Name           string `yaml:"name"`
	Tagline        string `yaml:"tagline"`
	Theme          string `yaml:"theme"`
	PrimaryColor   string `yaml:"primary_color"`
	SecondaryColor string `yaml:"secondary_color"`
	Logo           string `yaml:"logo,omitempty"`
}

type DepartmentData struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Color       string     `yaml:"color,omitempty"`
	SPOCs       []SPOCData `yaml:"spocs,omitempty"`
}

type SPOCData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone,omitempty"`
}

// File structures
type OrganizationFile struct {
	Organization OrganizationData `yaml:"organization"`
}

type DepartmentsFile struct {
	Departments []DepartmentData `yaml:"departments"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	store, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(store, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (repository.Store, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return repository.NewGormStore(db), nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(store repository.Store, dataDir string) error {
	organization, err := loadOrganization(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organization: %w", err)
	}

	departments, err := loadDepartments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}

	orgRepo := repository.NewOrganizationRepository(store)
	departmentRepo := repository.NewDepartmentRepository(store)
	spocRepo := repository.NewSPOCRepository(store)

	// Save organization settings, keeping defaults for unset fields
	if organization != nil {
		org, err := orgRepo.Get()
		if err != nil {
			return fmt.Errorf("failed to read organization: %w", err)
		}
		org.Name = organization.Name
		org.Tagline = organization.Tagline
		if organization.Theme != "" {
			org.Theme = organization.Theme
		}
		if organization.PrimaryColor != "" {
			org.PrimaryColor = organization.PrimaryColor
		}
		if organization.SecondaryColor != "" {
			org.SecondaryColor = organization.SecondaryColor
		}
		org.Logo = organization.Logo
		if err := orgRepo.Save(org); err != nil {
			return fmt.Errorf("failed to save organization: %w", err)
		}
		log.Printf("📋 Organization: %s", org.Name)
	}

	// Create departments and their SPOCs, skipping existing names and emails
	departmentCreated := 0
	spocCreated := 0
	for _, departmentData := range departments {
		department, created, err := createDepartment(departmentRepo, departmentData)
		if err != nil {
			return fmt.Errorf("failed to create department %s: %w", departmentData.Name, err)
		}
		if created {
			departmentCreated++
		}

		for _, spocData := range departmentData.SPOCs {
			created, err := createSPOC(spocRepo, departmentRepo, department, spocData)
			if err != nil {
				log.Printf("⚠️  Warning: failed to create SPOC %s: %v", spocData.Name, err)
				continue
			}
			if created {
				spocCreated++
			}
		}
	}
	log.Printf("📋 Departments: %d created, %d total", departmentCreated, len(departments))
	log.Printf("📋 SPOCs: %d created", spocCreated)

	return nil
}

func loadOrganization(dataDir string) (*OrganizationData, error) {
	var organization *OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organization") {
			var file OrganizationFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			organization = &file.Organization
		}
		return nil
	})

	return organization, err
}

func loadDepartments(dataDir string) ([]DepartmentData, error) {
	var allDepartments []DepartmentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "departments") {
			var file DepartmentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allDepartments = append(allDepartments, file.Departments...)
		}
		return nil
	})

	return allDepartments, err
}

func createDepartment(repo *repository.DepartmentRepository, departmentData DepartmentData) (*models.Department, bool, error) {
	if existing, err := repo.GetByName(departmentData.Name); err == nil {
		return existing, false, nil // created = false (existing)
	}

	color := departmentData.Color
	if color == "" {
		color = "#3B82F6"
	}

	department := &models.Department{
		ID:          uuid.New(),
		Name:        departmentData.Name,
		Description: departmentData.Description,
		Color:       color,
		SPOCIDs:     []uuid.UUID{},
		Active:      true,
		CreatedAt:   time.Now(),
	}

	if err := repo.Create(department); err != nil {
		return nil, false, fmt.Errorf("failed to create department: %w", err)
	}
	return department, true, nil // created = true
}

func createSPOC(repo *repository.SPOCRepository, departmentRepo *repository.DepartmentRepository, department *models.Department, spocData SPOCData) (bool, error) {
	if _, err := repo.GetByEmail(spocData.Email); err == nil {
		return false, nil // created = false (existing)
	}

	spoc := &models.SPOC{
		ID:               uuid.New(),
		Name:             spocData.Name,
		Email:            spocData.Email,
		Phone:            spocData.Phone,
		DepartmentID:     department.ID,
		AssignedGroupIDs: []uuid.UUID{},
		CreatedAt:        time.Now(),
	}

	if err := repo.Create(spoc); err != nil {
		return false, fmt.Errorf("failed to create SPOC: %w", err)
	}

	department.SPOCIDs = append(department.SPOCIDs, spoc.ID)
	if err := departmentRepo.Update(department); err != nil {
		return false, fmt.Errorf("failed to update department: %w", err)
	}
	return true, nil // created = true
}
