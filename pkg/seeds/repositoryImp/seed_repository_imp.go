package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"seedwizard/entities"
	"seedwizard/pkg/seeds/repository"
)

type seedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SeedRepository { return &seedRepo{db} }

func (r *seedRepo) Create(s *entities.Seed) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.Create(s).Error
}

func (r *seedRepo) FindByID(id, uid string) (*entities.Seed, error) {
	var s entities.Seed
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seedRepo) List(uid string) ([]entities.Seed, error) {
	var out []entities.Seed
	if err := r.db.Where("user_id = ?", uid).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *seedRepo) Update(s *entities.Seed) error { return r.db.Save(s).Error }

func (r *seedRepo) Delete(id, uid string) error {
	return r.db.Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Seed{}).Error
}

func (r *seedRepo) SetPlanted(id, uid string, planted bool) error {
	return r.setFlag(id, uid, "is_planted", planted)
}

func (r *seedRepo) SetFavorite(id, uid string, favorite bool) error {
	return r.setFlag(id, uid, "is_favorite", favorite)
}

func (r *seedRepo) setFlag(id, uid, column string, value bool) error {
	res := r.db.Model(&entities.Seed{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
