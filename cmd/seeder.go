package cmd

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	employeeDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/employee"
	oilDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/oil"
	userDatamodel "github.com/oleocontrol/oleocontrol/internal/core/datamodel/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with reference data",
	Long:  `Seed roles, departments, oil types and the initial administrator account.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initGorm(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			fmt.Println("Clearing seeded data")
			for _, table := range []string{"user_roles", "employees", "departments", "oils", "roles"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
		}

		seedRoles(db)
		seedDepartments(db)
		seedOils(db)
		seedAdmin(db, cfg.Security.BCryptCost)
	},
}

func seedRoles(db *gorm.DB) {
	for _, name := range []string{
		userDatamodel.RoleAdministrator,
		userDatamodel.RoleEmployee,
		userDatamodel.RoleMember,
		userDatamodel.RoleGuest,
	} {
		role := userDatamodel.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			log.Fatalf("failed to seed role %s: %v", name, err)
		}
	}
	fmt.Println("Seeded roles")
}

func seedDepartments(db *gorm.DB) {
	for _, name := range []string{
		employeeDatamodel.DepartmentEntries,
		employeeDatamodel.DepartmentAccounting,
		employeeDatamodel.DepartmentMemberAdmin,
		employeeDatamodel.DepartmentHR,
		employeeDatamodel.DepartmentLaboratory,
	} {
		dept := employeeDatamodel.Department{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&dept).Error; err != nil {
			log.Fatalf("failed to seed department %s: %v", name, err)
		}
	}
	fmt.Println("Seeded departments")
}

func seedOils(db *gorm.DB) {
	oils := []oilDatamodel.Oil{
		{Name: "Aceite de oliva virgen extra", Description: "Acidez máxima 0,8%", Price: decimal.RequireFromString("4.50")},
		{Name: "Aceite de oliva virgen", Description: "Acidez máxima 2%", Price: decimal.RequireFromString("3.20")},
		{Name: "Aceite de oliva lampante", Description: "Destinado a refinación", Price: decimal.RequireFromString("2.10")},
	}
	for _, o := range oils {
		oil := o
		if err := db.Where("name = ?", o.Name).FirstOrCreate(&oil).Error; err != nil {
			log.Fatalf("failed to seed oil %s: %v", o.Name, err)
		}
	}
	fmt.Println("Seeded oils")
}

func seedAdmin(db *gorm.DB, bcryptCost int) {
	var count int64
	if err := db.Model(&userDatamodel.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		log.Fatalf("failed to check admin user: %v", err)
	}
	if count > 0 {
		fmt.Println("Admin user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcryptCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	var adminRole userDatamodel.Role
	if err := db.Where("name = ?", userDatamodel.RoleAdministrator).First(&adminRole).Error; err != nil {
		log.Fatalf("failed to load administrator role: %v", err)
	}

	admin := userDatamodel.User{
		Username:     "admin",
		FirstName:    "Admin",
		LastName:     "OleoControl",
		DNI:          "00000000T",
		Email:        "admin@oleocontrol.es",
		PasswordHash: string(hash),
		IsActive:     true,
		Roles:        []userDatamodel.Role{adminRole},
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	fmt.Println("Seeded admin user: admin")
}
