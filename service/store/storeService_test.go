package storesvc_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/repository/memory"
	storesvc "github.com/joaomarcosmb/cd-rental/service/store"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/validation"
)

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := storesvc.New(memory.New())

	_, err := s.Create(ctx, validation.StoreInput{CNPJ: "11111111111111", TradeName: "x"})
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
	require.Len(t, apperr.Fields(err), 2)

	st, err := s.Create(ctx, validation.StoreInput{CNPJ: "12.345.678/0001-95", TradeName: "disco de vinil"})
	require.NoError(t, err)
	require.Equal(t, "12.345.678/0001-95", st.Record()["cnpj"])
	require.Equal(t, "Disco De Vinil", st.TradeName)

	_, err = s.Create(ctx, validation.StoreInput{CNPJ: "12345678000195", TradeName: "Outra"})
	require.ErrorContains(t, err, "CNPJ already registered")

	name := "vinil & cia"
	got, err := s.Update(ctx, st.ID, validation.StorePatch{TradeName: &name})
	require.NoError(t, err)
	require.Equal(t, "Vinil & Cia", got.TradeName)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = s.Attendants(ctx, uuid.New())
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))

	require.NoError(t, s.Delete(ctx, st.ID))
	_, err = s.Get(ctx, st.ID)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}
