package album

import (
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	albumrepo "github.com/joaomarcosmb/cd-rental/repository/album"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type CreateAlbumReq struct {
	Title       controller.Text `json:"title"`
	Artist      controller.Text `json:"artist"`
	Genre       controller.Text `json:"genre"`
	RentalPrice controller.Text `json:"rental_price"`
}

func (r CreateAlbumReq) input() validation.AlbumInput {
	return validation.AlbumInput{
		Title:       r.Title.String(),
		Artist:      r.Artist.String(),
		Genre:       r.Genre.String(),
		RentalPrice: r.RentalPrice.String(),
	}
}

type UpdateAlbumReq struct {
	Title       *controller.Text `json:"title"`
	Artist      *controller.Text `json:"artist"`
	Genre       *controller.Text `json:"genre"`
	RentalPrice *controller.Text `json:"rental_price"`
}

func (r UpdateAlbumReq) patch() validation.AlbumPatch {
	return validation.AlbumPatch{
		Title:       r.Title.Ptr(),
		Artist:      r.Artist.Ptr(),
		Genre:       r.Genre.Ptr(),
		RentalPrice: r.RentalPrice.Ptr(),
	}
}

type SearchQuery struct {
	Title  string `query:"title"`
	Artist string `query:"artist"`
	Genre  string `query:"genre"`
}

func (q SearchQuery) filter() albumrepo.Filter {
	return albumrepo.Filter{Title: q.Title, Artist: q.Artist, Genre: q.Genre}
}
