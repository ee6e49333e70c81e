package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"seedwizard/entities"
	"seedwizard/pkg/profile/repository"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) Get(id string) (*entities.Profile, error) {
	var p entities.Profile
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(p *entities.Profile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(p).Error
}
