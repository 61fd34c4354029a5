package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	addressrepo "github.com/joaomarcosmb/cd-rental/repository/address"
	albumrepo "github.com/joaomarcosmb/cd-rental/repository/album"
	attendantrepo "github.com/joaomarcosmb/cd-rental/repository/attendant"
	customerrepo "github.com/joaomarcosmb/cd-rental/repository/customer"
	inventoryrepo "github.com/joaomarcosmb/cd-rental/repository/inventory"
	paymentrepo "github.com/joaomarcosmb/cd-rental/repository/payment"
	personrepo "github.com/joaomarcosmb/cd-rental/repository/person"
	rentalrepo "github.com/joaomarcosmb/cd-rental/repository/rental"
	storerepo "github.com/joaomarcosmb/cd-rental/repository/store"
	"github.com/joaomarcosmb/cd-rental/util/database"
)

// Repos bundles one repository per entity, all bound to the same connection
// or transaction.
type Repos struct {
	Persons    personrepo.Repo
	Stores     storerepo.Repo
	Addresses  addressrepo.Repo
	Customers  customerrepo.Repo
	Attendants attendantrepo.Repo
	Albums     albumrepo.Repo
	Items      inventoryrepo.Repo
	Rentals    rentalrepo.Repo
	Payments   paymentrepo.Repo
}

// Store is the transaction boundary services work against.
type Store interface {
	// Repos returns repositories outside any transaction, for reads.
	Repos() Repos
	// InTx runs fn in one transaction; any error from fn or from the commit
	// rolls back every write fn made.
	InTx(ctx context.Context, fn func(r Repos) error) error
}

func ReposFor(q database.Querier) Repos {
	return Repos{
		Persons:    personrepo.New(q),
		Stores:     storerepo.New(q),
		Addresses:  addressrepo.New(q),
		Customers:  customerrepo.New(q),
		Attendants: attendantrepo.New(q),
		Albums:     albumrepo.New(q),
		Items:      inventoryrepo.New(q),
		Rentals:    rentalrepo.New(q),
		Payments:   paymentrepo.New(q),
	}
}

type PgStore struct {
	pool  *pgxpool.Pool
	repos Repos
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool, repos: ReposFor(pool)}
}

func (s *PgStore) Repos() Repos { return s.repos }

func (s *PgStore) InTx(ctx context.Context, fn func(r Repos) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(ReposFor(tx)); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
