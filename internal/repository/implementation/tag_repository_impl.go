package implementation

import (
	"context"
	"errors"

	"note-sharing-be/internal/entity"
	"note-sharing-be/internal/mapper"
	"note-sharing-be/internal/model"
	"note-sharing-be/internal/repository/contract"
	"note-sharing-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagMapper
}

func NewTagRepository(db *gorm.DB) contract.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagMapper(),
	}
}

// GetOrCreate inserts with ON CONFLICT DO NOTHING, then re-reads. When two
// transactions race on a new name, the loser's insert affects zero rows and
// the re-read picks up the winner's row. A unique violation that still
// escapes (e.g. older servers without the conflict clause applied) is
// treated the same way.
func (r *TagRepositoryImpl) GetOrCreate(ctx context.Context, name string) (*entity.Tag, error) {
	m := model.Tag{Id: uuid.New(), Name: name}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&m)
	if res.Error != nil && !isUniqueViolation(res.Error) {
		return nil, res.Error
	}

	if res.Error == nil && res.RowsAffected > 0 {
		return r.mapper.ToEntity(&m), nil
	}

	var existing model.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&existing), nil
}

func (r *TagRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	var m model.Tag
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	var models []*model.Tag
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
