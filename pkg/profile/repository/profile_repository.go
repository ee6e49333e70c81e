package repository

import "seedwizard/entities"

type ProfileRepository interface {
	Get(id string) (*entities.Profile, error)
	Upsert(p *entities.Profile) error
}
