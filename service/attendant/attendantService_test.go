package attendantsvc_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/repository/memory"
	attendantsvc "github.com/joaomarcosmb/cd-rental/service/attendant"
	personsvc "github.com/joaomarcosmb/cd-rental/service/person"
	storesvc "github.com/joaomarcosmb/cd-rental/service/store"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/validation"
)

func TestAttendantLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := attendantsvc.New(store)

	p, err := personsvc.New(store).Create(ctx, validation.PersonInput{
		CPF: "10987654321", Name: "bruno lima", Phone: "85999994321", Email: "bruno@example.com",
	})
	require.NoError(t, err)
	stores := storesvc.New(store)
	st, err := stores.Create(ctx, validation.StoreInput{CNPJ: "12345678000195", TradeName: "Disco"})
	require.NoError(t, err)

	_, err = s.Create(ctx, validation.AttendantInput{PersonID: uuid.NewString(), StoreID: uuid.NewString()})
	e, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.ErrNotFound, e.Code)
	require.Equal(t, []string{"Person not found", "Store not found"}, e.Messages())

	at, err := s.Create(ctx, validation.AttendantInput{PersonID: p.ID.String(), StoreID: st.ID.String()})
	require.NoError(t, err)
	require.Equal(t, "Bruno Lima", at.Record()["name"])

	_, err = s.Create(ctx, validation.AttendantInput{PersonID: p.ID.String(), StoreID: st.ID.String()})
	require.ErrorContains(t, err, "Person is already an attendant")

	staff, err := stores.Attendants(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, staff, 1)

	require.Equal(t, apperr.ErrConflict, apperr.Code(stores.Delete(ctx, st.ID)))

	other, err := stores.Create(ctx, validation.StoreInput{CNPJ: "98765432000110", TradeName: "Outra"})
	require.NoError(t, err)
	sid := other.ID.String()
	moved, err := s.Update(ctx, at.ID, validation.AttendantPatch{StoreID: &sid})
	require.NoError(t, err)
	require.Equal(t, other.ID, moved.StoreID)

	require.NoError(t, stores.Delete(ctx, st.ID))
	require.NoError(t, s.Delete(ctx, at.ID))
	require.Equal(t, apperr.ErrNotFound, apperr.Code(s.Delete(ctx, at.ID)))
}
