package main

import (
	"log"
	"os"

	"exam-prep-be/internal/model"
	"exam-prep-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding plans...")
	seedPlans(db)

	color.Cyan("Seeding payment methods...")
	seedPaymentMethods(db)

	color.Cyan("Seeding email templates...")
	seedEmailTemplates(db)

	color.Cyan("Seeding admin user...")
	seedAdmin(db)

	color.Green("✅ Seeding completed!")
}

func seedPlans(db *gorm.DB) {
	plans := []model.Plan{
		{
			Name:        "Free",
			Slug:        "free",
			Description: "Browse the catalog and bookmark questions.",
			Tagline:     "Get started for free",
			IsActive:    true,
			SortOrder:   1,
			PricingOptions: []*model.PricingOption{
				{Label: "Lifetime", Price: 0, Months: 0, SortOrder: 1},
			},
			Features: []*model.PlanFeature{
				{Text: "Browse all questions"},
				{Text: "Unlimited bookmarks"},
				{Text: "5 paper downloads per month", IsQuota: true, Key: "paper_downloads", Limit: 5, Period: "monthly"},
			},
		},
		{
			Name:          "Premium",
			Slug:          "premium",
			Description:   "Full access with unlimited paper downloads.",
			Tagline:       "Everything you need to prepare",
			IsActive:      true,
			IsMostPopular: true,
			SortOrder:     2,
			PricingOptions: []*model.PricingOption{
				{Label: "Monthly", Price: 49000, Months: 1, SortOrder: 1},
				{Label: "Yearly", Price: 399000, Months: 12, SortOrder: 2},
			},
			Features: []*model.PlanFeature{
				{Text: "Everything in Free"},
				{Text: "Full answer explanations"},
				{Text: "Unlimited paper downloads", IsQuota: true, Key: "paper_downloads", Limit: -1, Period: "lifetime"},
				{Text: "Priority support"},
			},
		},
	}

	for _, p := range plans {
		var existing model.Plan
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			color.Yellow("Plan '%s' already exists, skipping...", p.Slug)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			color.Red("Error creating plan '%s': %v", p.Slug, err)
		} else {
			color.Green("Created plan: %s", p.Name)
		}
	}
}

func seedPaymentMethods(db *gorm.DB) {
	methods := []model.PaymentMethod{
		{Name: "Midtrans", Code: "midtrans", Kind: "gateway", Enabled: true, SortOrder: 1},
		{Name: "Bank Transfer", Code: "bank_transfer", Kind: "manual", Enabled: true, SortOrder: 2,
			Instructions: "Transfer the exact amount to account 123-456-7890 (Exam Prep) and include your order ID in the remarks. Orders are confirmed within 1 business day."},
	}

	for _, m := range methods {
		var existing model.PaymentMethod
		if err := db.Where("code = ?", m.Code).First(&existing).Error; err == nil {
			color.Yellow("Payment method '%s' already exists, skipping...", m.Code)
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			color.Red("Error creating payment method '%s': %v", m.Code, err)
		} else {
			color.Green("Created payment method: %s", m.Name)
		}
	}
}

func seedEmailTemplates(db *gorm.DB) {
	templates := []model.EmailTemplate{
		{
			Key:       "order_confirmation",
			Subject:   "Your order is confirmed",
			Body:      "<p>Hi {{FullName}},</p><p>Your payment for <strong>{{PlanName}}</strong> ({{Amount}}) has been received. Order ID: {{OrderId}}.</p><p>Happy studying!</p>",
			Variables: datatypes.JSON([]byte(`["FullName","PlanName","Amount","OrderId"]`)),
		},
		{
			Key:       "password_reset",
			Subject:   "Reset your password",
			Body:      "<p>Hi {{Name}},</p><p>Click <a href=\"{{ResetLink}}\">here</a> to reset your password. The link expires in 1 hour.</p><p>If you did not request this, you can ignore this email.</p>",
			Variables: datatypes.JSON([]byte(`["Name","ResetLink"]`)),
		},
		{
			Key:       "ticket_reply",
			Subject:   "We replied to your ticket",
			Body:      "<p>Hi {{Name}},</p><p>Our team replied to your ticket <strong>{{Subject}}</strong>. Log in to view the response.</p>",
			Variables: datatypes.JSON([]byte(`["Name","Subject"]`)),
		},
	}

	for _, t := range templates {
		var existing model.EmailTemplate
		if err := db.Where("key = ?", t.Key).First(&existing).Error; err == nil {
			color.Yellow("Email template '%s' already exists, skipping...", t.Key)
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating email template '%s': %v", t.Key, err)
		} else {
			color.Green("Created email template: %s", t.Key)
		}
	}
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
		color.Yellow("ADMIN_PASSWORD not set, using default (change it immediately)")
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Admin user '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error hashing admin password: %v", err)
		return
	}
	hashStr := string(hash)

	admin := model.User{
		Email:         email,
		PasswordHash:  &hashStr,
		FullName:      "Administrator",
		Role:          "admin",
		Status:        "active",
		EmailVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		color.Red("Error creating admin user: %v", err)
	} else {
		color.Green("Created admin user: %s", email)
	}
}
