package main

import (
	"log"
	"os"
	"time"

	"note-sharing-be/internal/model"
	"note-sharing-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo tenant: one company, an owner, a workspace and a few
// notes in both visibilities so the public directory has content.
func main() {
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

	if err := seedDemoTenant(db); err != nil {
		log.Fatal("Error: Seeding failed:", err)
	}
	log.Println("Seeding complete.")
}

func seedDemoTenant(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Company row first: users.company_id carries an FK.
	company := model.Company{
		Name:     "Demo Co",
		Hostname: "demo.example",
	}
	if err := db.Where(model.Company{Hostname: company.Hostname}).FirstOrCreate(&company).Error; err != nil {
		return err
	}

	owner := model.User{
		CompanyId:    company.Id,
		Username:     "demo-owner",
		Email:        "owner@demo.example",
		PasswordHash: string(hash),
		Role:         "owner",
	}
	if err := db.Where(model.User{Email: owner.Email}).FirstOrCreate(&owner).Error; err != nil {
		return err
	}

	if company.CreatorId != owner.Id {
		company.CreatorId = owner.Id
		if err := db.Save(&company).Error; err != nil {
			return err
		}
	}

	workspace := model.Workspace{
		CompanyId: company.Id,
		Name:      "General",
	}
	if err := db.Where(model.Workspace{CompanyId: company.Id, Name: workspace.Name}).FirstOrCreate(&workspace).Error; err != nil {
		return err
	}

	tag := model.Tag{Name: "getting-started"}
	if err := db.Where(model.Tag{Name: tag.Name}).FirstOrCreate(&tag).Error; err != nil {
		return err
	}

	now := time.Now()
	notes := []model.Note{
		{
			WorkspaceId: workspace.Id,
			AuthorId:    owner.Id,
			Title:       "Welcome to the demo workspace",
			Content:     "Private draft only your company can see.",
			Visibility:  "private",
			Status:      "draft",
		},
		{
			WorkspaceId: workspace.Id,
			AuthorId:    owner.Id,
			Title:       "Hello from Demo Co",
			Content:     "This note is published to the public directory.",
			Visibility:  "public",
			Status:      "published",
			PublishedAt: &now,
		},
	}
	for i := range notes {
		note := &notes[i]
		if err := db.Where(model.Note{WorkspaceId: workspace.Id, Title: note.Title}).FirstOrCreate(note).Error; err != nil {
			return err
		}
		link := model.NoteTag{NoteId: note.Id, TagId: tag.Id}
		if err := db.Where(link).FirstOrCreate(&link).Error; err != nil {
			return err
		}
	}

	return nil
}
