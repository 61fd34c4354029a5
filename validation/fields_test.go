package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/validation"
)

func ptr(s string) *string { return &s }

func fieldMsg(t *testing.T, err error) string {
	t.Helper()
	fe, ok := err.(apperr.FieldError)
	require.True(t, ok, "want FieldError, got %T", err)
	return fe.Message
}

func TestNormalizationIsIdempotent(t *testing.T) {
	cases := []struct {
		name string
		fn   func(string) (string, error)
		in   string
		want string
	}{
		{"cpf", validation.CPF, "123.456.789-01", "12345678901"},
		{"cnpj", validation.CNPJ, "12.345.678/0001-95", "12345678000195"},
		{"name", validation.Name, "  ana   souza ", "Ana   Souza"},
		{"phone", validation.Phone, "(85) 99999-1234", "85999991234"},
		{"email", validation.Email, " Ana@Example.COM ", "ana@example.com"},
		{"state", validation.State, " ce", "CE"},
		{"zip", validation.ZipCode, "60000-000", "60000000"},
		{"barcode", validation.Barcode, " mj-001 ", "MJ-001"},
		{"genre", validation.Genre, "pop", "Pop"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			once, err := tc.fn(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, once)
			twice, err := tc.fn(once)
			require.NoError(t, err)
			require.Equal(t, once, twice)
		})
	}
}

func TestUniformDigitsRejected(t *testing.T) {
	_, err := validation.CPF("11111111111")
	require.Equal(t, "CPF cannot have all the same digits", fieldMsg(t, err))
	_, err = validation.CNPJ("11111111111111")
	require.Equal(t, "CNPJ cannot have all the same digits", fieldMsg(t, err))
}

func TestFieldMessages(t *testing.T) {
	_, err := validation.CPF("   ")
	require.Equal(t, "CPF is required", fieldMsg(t, err))
	_, err = validation.CPF("123")
	require.Equal(t, "CPF must be exactly 11 characters", fieldMsg(t, err))
	_, err = validation.Name("a")
	require.Equal(t, "Name must be at least 2 characters", fieldMsg(t, err))
	_, err = validation.Phone("8599")
	require.Equal(t, "Phone must be in the format 85999999999", fieldMsg(t, err))
	_, err = validation.Email("nope@")
	require.Equal(t, "Email must be a valid email address", fieldMsg(t, err))
	_, err = validation.State("C1")
	require.Equal(t, "State must contain only letters", fieldMsg(t, err))
	_, err = validation.Barcode("MJ_001")
	require.Equal(t, "Barcode must contain only alphanumeric characters and hyphens", fieldMsg(t, err))
	_, err = validation.ItemStatus("broken")
	require.Equal(t, "Status must be one of: available, rented, maintenance, damaged, lost", fieldMsg(t, err))
	_, err = validation.Ref("album_id", "Album ID", "abc")
	require.Equal(t, "Album ID must be a valid UUID", fieldMsg(t, err))
}

func TestMoney(t *testing.T) {
	d, err := validation.RentalPrice("9.99")
	require.NoError(t, err)
	require.Equal(t, "9.99", d.String())

	_, err = validation.RentalPrice("abc")
	require.Equal(t, "Rental price must be a valid number", fieldMsg(t, err))
	_, err = validation.Amount("0")
	require.Equal(t, "Amount must be positive", fieldMsg(t, err))
	_, err = validation.Amount("-3")
	require.Equal(t, "Amount must be positive", fieldMsg(t, err))
}

func TestEnumNormalizes(t *testing.T) {
	m, err := validation.PaymentMethod(" PIX ")
	require.NoError(t, err)
	require.EqualValues(t, "pix", m)
}

func TestTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-01T10:30:00Z", "2024-03-01T10:30:00", "2024-03-01T07:30:00-03:00", "2024-03-01 10:30:00"} {
		got, err := validation.Timestamp("rental_date", "Rental date", in)
		require.NoError(t, err, in)
		require.True(t, want.Equal(got), in)
	}
	_, err := validation.Timestamp("rental_date", "Rental date", "01/03/2024")
	require.Equal(t, "Invalid rental date format. Use ISO format (YYYY-MM-DDTHH:MM:SS)", fieldMsg(t, err))
}
