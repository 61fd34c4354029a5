package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	albumrepo "github.com/joaomarcosmb/cd-rental/repository/album"
	"github.com/joaomarcosmb/cd-rental/repository/memory"
	rentalrepo "github.com/joaomarcosmb/cd-rental/repository/rental"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
)

func TestInTxRollsBackEveryWrite(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	item := model.InventoryItem{ID: uuid.New(), Barcode: "MJ-001", Status: model.ItemAvailable}
	require.NoError(t, s.Repos().Items.Insert(ctx, &item))

	boom := errors.New("boom")
	err := s.InTx(ctx, func(r repository.Repos) error {
		it, _ := r.Items.FindByIDForUpdate(ctx, item.ID)
		it.Status = model.ItemRented
		require.NoError(t, r.Items.Update(ctx, it))
		require.NoError(t, r.Rentals.Insert(ctx, &model.Rental{ID: uuid.New(), ItemID: item.ID, RentalDate: time.Now()}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Repos().Items.FindByID(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, model.ItemAvailable, got.Status)
	n, err := s.Repos().Rentals.Count(ctx, rentalrepo.Filter{})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestInTxCommits(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	p := model.Person{ID: uuid.New(), CPF: "12345678901", Email: "a@b.co"}
	require.NoError(t, s.InTx(ctx, func(r repository.Repos) error { return r.Persons.Insert(ctx, &p) }))

	got, err := s.Repos().Persons.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.CPF, got.CPF)

	missing, err := s.Repos().Persons.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUniqueConstraints(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	r := s.Repos()

	a := model.Person{ID: uuid.New(), CPF: "12345678901", Email: "a@b.co"}
	require.NoError(t, r.Persons.Insert(ctx, &a))
	b := model.Person{ID: uuid.New(), CPF: "12345678901", Email: "other@b.co"}
	require.Equal(t, apperr.ErrConflict, apperr.Code(r.Persons.Insert(ctx, &b)))

	exists, err := r.Persons.ExistsWithUniqueField(ctx, "email", "a@b.co", nil)
	require.NoError(t, err)
	require.True(t, exists)
	exists, err = r.Persons.ExistsWithUniqueField(ctx, "email", "a@b.co", &a.ID)
	require.NoError(t, err)
	require.False(t, exists)

	itemID := uuid.New()
	require.NoError(t, r.Rentals.Insert(ctx, &model.Rental{ID: uuid.New(), ItemID: itemID}))
	err = r.Rentals.Insert(ctx, &model.Rental{ID: uuid.New(), ItemID: itemID})
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func TestAlbumSearchIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	r := s.Repos()
	require.NoError(t, r.Albums.Insert(ctx, &model.Album{ID: uuid.New(), Title: "Thriller", Artist: "Michael Jackson", Genre: "Pop"}))
	require.NoError(t, r.Albums.Insert(ctx, &model.Album{ID: uuid.New(), Title: "Bad", Artist: "Michael Jackson", Genre: "Pop"}))
	require.NoError(t, r.Albums.Insert(ctx, &model.Album{ID: uuid.New(), Title: "Nevermind", Artist: "Nirvana", Genre: "Rock"}))

	got, err := r.Albums.FindAll(ctx, albumrepo.Filter{Artist: "jackson"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = r.Albums.FindAll(ctx, albumrepo.Filter{Artist: "jackson", Title: "THRILL"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Thriller", got[0].Title)
}

func TestCustomerReadJoinsPerson(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	r := s.Repos()
	p := model.Person{ID: uuid.New(), CPF: "12345678901", Name: "Ana", Email: "a@b.co"}
	require.NoError(t, r.Persons.Insert(ctx, &p))
	c := model.Customer{ID: uuid.New(), PersonID: p.ID}
	require.NoError(t, r.Customers.Insert(ctx, &c))

	got, err := r.Customers.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Person)
	require.Equal(t, "Ana", got.Person.Name)
}

func TestRentalsListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	r := s.Repos()

	day := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	older := model.Rental{ID: uuid.New(), ItemID: uuid.New(), RentalDate: day}
	require.NoError(t, r.Rentals.Insert(ctx, &older))

	lo := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	hi := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")
	for _, id := range []uuid.UUID{lo, hi} {
		rt := model.Rental{ID: id, ItemID: uuid.New(), RentalDate: day.Add(24 * time.Hour)}
		require.NoError(t, r.Rentals.Insert(ctx, &rt))
	}

	all, err := r.Rentals.FindAll(ctx, rentalrepo.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []uuid.UUID{hi, lo, older.ID}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})
}
