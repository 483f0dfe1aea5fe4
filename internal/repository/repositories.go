// Package repository handles all interactions with the database.
//
// It builds SQL with squirrel, runs it on the shared pgx pool and scans rows
// into model structs, abstracting SQL away from the service layer.
//
// Lookups that find nothing return pgx.ErrNoRows wrapped as
// "table:<name>: ..." so sqlerr can name the missing entity.
package repository

import (
	"github.com/deppfellow/inventory-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Category *CategoryRepository
	Area     *AreaRepository
	Product  *ProductRepository
}

// NewRepositories constructs the repository container on top of s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Category: NewCategoryRepository(s),
		Area:     NewAreaRepository(s),
		Product:  NewProductRepository(s),
	}
}
