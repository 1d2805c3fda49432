package database

import (
	"log"

	"event_manager/constants"
	"event_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData provisions the fixed rows every deployment needs: the admin login,
// the event-type catalogue, one role per department and a few starter venues
// and catering sets. FirstOrCreate keeps it idempotent across restarts.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashedPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{Username: "Administration", Email: "admin@eventna.local", Password: hashedPassword, Role: constants.ROLE_ADMIN},
	}
	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed data for user:", user.Email, "error:", err)
		}
	}

	for _, name := range constants.EventTypeNames {
		eventType := model.EventType{Name: name}
		if err := db.Where(model.EventType{Name: name}).FirstOrCreate(&eventType).Error; err != nil {
			log.Println("failed to seed event type:", name, "error:", err)
		}
	}

	minSalary := 300.0
	maxSalary := 5000.0
	for _, dept := range constants.DeptNames {
		role := model.Role{
			RoleName:  dept + " coordinator",
			DeptName:  dept,
			MinSalary: &minSalary,
			MaxSalary: &maxSalary,
		}
		if err := db.Where(model.Role{DeptName: dept}).FirstOrCreate(&role).Error; err != nil {
			log.Println("failed to seed role for dept:", dept, "error:", err)
		}
	}

	venues := []model.Venue{
		{Slug: "grand-hall", Name: "Grand Hall", Location: "12 Riverside Blvd", MaxOccupancy: 400, Email: "booking@grandhall.local", Phone: "+855 23 900 100"},
		{Slug: "city-garden", Name: "City Garden", Location: "5 Park Lane", MaxOccupancy: 150, Email: "events@citygarden.local", Phone: "+855 23 900 200"},
	}
	for _, venue := range venues {
		if err := db.Where(model.Venue{Slug: venue.Slug}).FirstOrCreate(&venue).Error; err != nil {
			log.Println("failed to seed venue:", venue.Name, "error:", err)
		}
	}

	caterings := []model.Catering{
		{CateringSet: "Standard buffet", Price: 18.50},
		{CateringSet: "Premium set menu", Price: 42.00},
	}
	for _, catering := range caterings {
		if err := db.Where(model.Catering{CateringSet: catering.CateringSet}).FirstOrCreate(&catering).Error; err != nil {
			log.Println("failed to seed catering:", catering.CateringSet, "error:", err)
		}
	}
}
