package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByWorkspaceID struct {
	WorkspaceID uuid.UUID
}

func (s ByWorkspaceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("workspace_id = ?", s.WorkspaceID)
}

type ByCompanyID struct {
	CompanyID uuid.UUID
}

func (s ByCompanyID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_id = ?", s.CompanyID)
}

type ByNoteID struct {
	NoteID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// TitleContains is the directory substring filter on note titles.
type TitleContains struct {
	Query string
}

func (s TitleContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title LIKE ?", "%"+s.Query+"%")
}

// PublicPublished restricts to notes visible in the public directory.
// Both conditions are required; a public draft stays hidden.
type PublicPublished struct{}

func (s PublicPublished) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("visibility = ? AND status = ?", "public", "published")
}

// HasTagName keeps notes holding an association to the exactly-named tag.
type HasTagName struct {
	Name string
}

func (s HasTagName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"notes.id IN (SELECT nt.note_id FROM note_tags nt JOIN tags t ON nt.tag_id = t.id WHERE t.name = ?)",
		s.Name,
	)
}
