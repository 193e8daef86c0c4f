package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bt2horizon/internal/config"
	"bt2horizon/internal/database"
	"bt2horizon/internal/domain"
)

// Seed fills an empty database with the default admin account and a
// small set of sample content. Every insert is idempotent: existing
// rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	seedAdmin(db)
	seedPosts(db)
	seedPackages(db)

	log.Println("seed complete")
}

func seedAdmin(db *gorm.DB) {
	const adminEmail = "admin@bt2.com"

	var count int64
	db.Model(&domain.User{}).Where("email = ?", adminEmail).Count(&count)
	if count > 0 {
		log.Println("admin user already present")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := domain.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         "BT2 Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}
	log.Println("created admin user", adminEmail)
}

func seedPosts(db *gorm.DB) {
	var count int64
	db.Model(&domain.Post{}).Count(&count)
	if count > 0 {
		return
	}

	post := domain.Post{
		Title:   "Welcome to BT2 Horizon",
		Slug:    "welcome-to-bt2-horizon",
		Content: "We plan trips, book flights and handle the paperwork so you can focus on the journey.",
	}
	if err := db.Create(&post).Error; err != nil {
		log.Fatal(err)
	}
	log.Println("created sample post")
}

func seedPackages(db *gorm.DB) {
	var count int64
	db.Model(&domain.Package{}).Count(&count)
	if count > 0 {
		return
	}

	str := func(s string) *string { return &s }

	packages := []domain.Package{
		{
			Code:        "BT2-GRE-01",
			Title:       "Greek Islands Escape",
			Nights:      7,
			Price:       "1299",
			TripDetails: str("Santorini and Mykonos with ferry transfers and breakfast included."),
			Img:         str("/static/uploads/images/packages/greece.jpg"),
			Images:      []string{"/static/uploads/images/packages/greece.jpg"},
		},
		{
			Code:        "BT2-LON-02",
			Title:       "London City Break",
			Nights:      4,
			Price:       "899",
			TripDetails: str("Central hotel, airport pickup and a West End show."),
			Img:         str("/static/uploads/images/packages/london.jpg"),
			Images:      []string{"/static/uploads/images/packages/london.jpg"},
		},
		{
			Code:        "BT2-CRB-03",
			Title:       "Caribbean All-Inclusive",
			Nights:      10,
			Price:       "2499",
			TripDetails: str("Adults-only resort with all meals, drinks and water sports."),
			Img:         str("/static/uploads/images/packages/caribbean.jpg"),
			Images:      []string{"/static/uploads/images/packages/caribbean.jpg"},
		},
	}

	for i := range packages {
		if err := db.Create(&packages[i]).Error; err != nil {
			log.Fatal(err)
		}
	}
	log.Println("created sample packages")
}
