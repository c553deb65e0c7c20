package postgres

import (
	"database/sql"

	"bike-rental-billing/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.PricingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		PricingRepository: NewPricingRepository(db),
	}
}
