package repository

import "seedwizard/entities"

type SeedRepository interface {
	Create(s *entities.Seed) error
	FindByID(id, uid string) (*entities.Seed, error)
	List(uid string) ([]entities.Seed, error)
	Update(s *entities.Seed) error
	Delete(id, uid string) error
	SetPlanted(id, uid string, planted bool) error
	SetFavorite(id, uid string, favorite bool) error
}
