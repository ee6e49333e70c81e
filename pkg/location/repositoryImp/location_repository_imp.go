package repositoryImp

import (
	"gorm.io/gorm"

	"seedwizard/entities"
	"seedwizard/pkg/location/repository"
)

type locationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LocationRepository { return &locationRepo{db} }

func (r *locationRepo) FindByZip(zip string) (*entities.ZipFrost, error) {
	var z entities.ZipFrost
	if err := r.db.Where("zip_code = ?", zip).First(&z).Error; err != nil {
		return nil, err
	}
	return &z, nil
}
