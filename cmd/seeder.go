package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlDB.Close()

		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"reports", "payroll", "project_employees", "attendance", "projects", "employees", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedUsers(db)
		seedEmployees(db)
	},
}

func seedUsers(db *gorm.DB) {
	accounts := []struct {
		Username string
		Role     string
	}{
		{"admin", "ADMIN"},
		{"manager", "MANAGER"},
		{"assistant", "ASSISTANT MANAGER"},
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	for _, a := range accounts {
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE username = ?", a.Username).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Printf("user %s already exists; skipping\n", a.Username)
			continue
		}

		if err := db.Exec(
			"INSERT INTO users (username, password_hash, account_type) VALUES (?, ?, ?)",
			a.Username, string(hash), a.Role,
		).Error; err != nil {
			log.Fatalf("failed to insert user %s: %v", a.Username, err)
		}
		fmt.Println("Seeded user:", a.Username)
	}
}

func seedEmployees(db *gorm.DB) {
	var count int64
	if err := db.Raw("SELECT COUNT(*) FROM employees").Scan(&count).Error; err != nil {
		log.Fatalf("failed to count employees: %v", err)
	}
	if count > 0 {
		fmt.Println("employees already present; skipping sample data")
		return
	}

	employees := []struct {
		Name       string
		Position   string
		Department string
	}{
		{"Juan Dela Cruz", "Site Engineer", "Engineering"},
		{"Maria Santos", "Accountant", "Finance"},
		{"Pedro Reyes", "Foreman", "Operations"},
	}

	for _, e := range employees {
		if err := db.Exec(
			"INSERT INTO employees (name, position, department, status) VALUES (?, ?, ?, 'Active')",
			e.Name, e.Position, e.Department,
		).Error; err != nil {
			log.Fatalf("failed to insert employee %s: %v", e.Name, err)
		}
	}
	fmt.Println("Seeded sample employees")

	start := time.Now().Format(time.DateOnly)
	end := time.Now().AddDate(0, 6, 0).Format(time.DateOnly)
	if err := db.Exec(
		`INSERT INTO projects (project_name, department, start_date, end_date, status)
		 VALUES ('Head Office Renovation', 'Operations', ?, ?, 'Active')`,
		start, end,
	).Error; err != nil {
		log.Fatalf("failed to insert sample project: %v", err)
	}
	fmt.Println("Seeded sample project")
}
