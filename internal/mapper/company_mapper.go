package mapper

import (
	"time"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/model"
)

type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func (m *CompanyMapper) ToEntity(c *model.Company) *entity.Company {
	if c == nil {
		return nil
	}
	return &entity.Company{
		Id:        c.Id,
		Name:      c.Name,
		Hostname:  c.Hostname,
		CreatorId: c.CreatorId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAtPtr(c.UpdatedAt),
	}
}

func (m *CompanyMapper) ToModel(c *entity.Company) *model.Company {
	if c == nil {
		return nil
	}
	return &model.Company{
		Id:        c.Id,
		Name:      c.Name,
		Hostname:  c.Hostname,
		CreatorId: c.CreatorId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAtVal(c.UpdatedAt),
	}
}

func updatedAtPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func updatedAtVal(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
