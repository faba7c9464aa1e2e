package implementation

import (
	"context"
	"errors"

	"medinote-be/internal/entity"
	"medinote-be/internal/mapper"
	"medinote-be/internal/model"
	"medinote-be/internal/repository/contract"
	"medinote-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DoctorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DoctorMapper
}

func NewDoctorRepository(db *gorm.DB) contract.DoctorRepository {
	return &DoctorRepositoryImpl{
		db:     db,
		mapper: mapper.NewDoctorMapper(),
	}
}

func (r *DoctorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DoctorRepositoryImpl) Create(ctx context.Context, doctor *entity.Doctor) error {
	m := r.mapper.ToModel(doctor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doctor = *r.mapper.ToEntity(m)
	return nil
}

func (r *DoctorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Doctor, error) {
	var m model.Doctor
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DoctorRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Doctor{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
