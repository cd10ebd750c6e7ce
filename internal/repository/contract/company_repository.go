package contract

import (
	"context"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/repository/specification"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error)
}
