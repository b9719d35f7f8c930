package repository

import "plantlog/entities"

type AccountRepository interface {
	Create(a *entities.Account) error
	FindByUsername(username string) (*entities.Account, error)
}
