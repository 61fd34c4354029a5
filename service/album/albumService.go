package albumsvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	albumrepo "github.com/joaomarcosmb/cd-rental/repository/album"
	inventoryrepo "github.com/joaomarcosmb/cd-rental/repository/inventory"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type Service interface {
	Create(ctx context.Context, in validation.AlbumInput) (*model.Album, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Album, error)
	List(ctx context.Context) ([]model.Album, error)
	Update(ctx context.Context, id uuid.UUID, in validation.AlbumPatch) (*model.Album, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Search matches each supplied term as a case-insensitive substring.
	Search(ctx context.Context, f albumrepo.Filter) ([]model.Album, error)
	ByArtist(ctx context.Context, artist string) ([]model.Album, error)
	ByGenre(ctx context.Context, genre string) ([]model.Album, error)
}

type service struct{ store repository.Store }

func New(store repository.Store) Service { return &service{store: store} }

func (s *service) Create(ctx context.Context, in validation.AlbumInput) (*model.Album, error) {
	a, err := validation.Album(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a.ID, a.CreatedAt, a.UpdatedAt = uuid.New(), now, now

	err = s.store.InTx(ctx, func(r repository.Repos) error {
		return r.Albums.Insert(ctx, &a)
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &a, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Album, error) {
	a, err := s.store.Repos().Albums.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	if a == nil {
		return nil, apperr.NotFound("Album not found")
	}
	return a, nil
}

func (s *service) List(ctx context.Context) ([]model.Album, error) {
	return s.Search(ctx, albumrepo.Filter{})
}

func (s *service) Search(ctx context.Context, f albumrepo.Filter) ([]model.Album, error) {
	out, err := s.store.Repos().Albums.FindAll(ctx, f)
	return out, apperr.Translate(err)
}

func (s *service) ByArtist(ctx context.Context, artist string) ([]model.Album, error) {
	return s.Search(ctx, albumrepo.Filter{Artist: artist})
}

func (s *service) ByGenre(ctx context.Context, genre string) ([]model.Album, error) {
	return s.Search(ctx, albumrepo.Filter{Genre: genre})
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in validation.AlbumPatch) (*model.Album, error) {
	var out *model.Album
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		a, err := r.Albums.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.NotFound("Album not found")
		}
		if err := validation.PatchAlbum(a, in); err != nil {
			return err
		}
		a.UpdatedAt = time.Now().UTC()
		if err := r.Albums.Update(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		a, err := r.Albums.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.NotFound("Album not found")
		}
		n, err := r.Items.Count(ctx, inventoryrepo.Filter{AlbumID: &id})
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.Conflict("Cannot delete album with existing inventory items")
		}
		return r.Albums.Delete(ctx, id)
	})
	return apperr.Translate(err)
}
