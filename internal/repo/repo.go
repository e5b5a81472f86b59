package repo

import (
	"github.com/khesal1978-cpu/siku/internal/pg"
	boostrepo "github.com/khesal1978-cpu/siku/internal/repo/boost-repo"
	gamerepo "github.com/khesal1978-cpu/siku/internal/repo/game-repo"
	profilerepo "github.com/khesal1978-cpu/siku/internal/repo/profile-repo"
	sessionrepo "github.com/khesal1978-cpu/siku/internal/repo/session-repo"
	transactionrepo "github.com/khesal1978-cpu/siku/internal/repo/transaction-repo"
)

// Aliases so the repositories can be embedded side by side.
type (
	profileRepository     = profilerepo.Repository
	sessionRepository     = sessionrepo.Repository
	transactionRepository = transactionrepo.Repository
	boostRepository       = boostrepo.Repository
	gameRepository        = gamerepo.Repository
)

// Store is the durable, Postgres-backed implementation of the storage
// surface. Method names are unique across the embedded repositories, so the
// union satisfies service.Storage.
type Store struct {
	*profileRepository
	*sessionRepository
	*transactionRepository
	*boostRepository
	*gameRepository
}

func New(conn pg.Database, txManager pg.TXManager) *Store {
	return &Store{
		profileRepository:     profilerepo.New(conn, txManager),
		sessionRepository:     sessionrepo.New(conn),
		transactionRepository: transactionrepo.New(conn),
		boostRepository:       boostrepo.New(conn),
		gameRepository:        gamerepo.New(conn),
	}
}
