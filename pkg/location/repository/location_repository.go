package repository

import "seedwizard/entities"

type LocationRepository interface {
	FindByZip(zip string) (*entities.ZipFrost, error)
}
