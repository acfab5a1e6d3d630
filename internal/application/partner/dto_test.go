package partner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movements/backend/internal/domain/partner"
)

func TestToCustomerResponse(t *testing.T) {
	t.Run("preserves every field", func(t *testing.T) {
		customer, err := partner.NewCustomer("Maria Silva", "maria@example.com", "52998224725", "tester")
		require.NoError(t, err)

		birth := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
		require.NoError(t, customer.UpdateProfile("Maria Silva", partner.GenderFemale, &birth, "+55 11 91234-5678"))
		require.NoError(t, customer.SetPreferences(partner.ChannelSMS, true, false))
		require.NoError(t, customer.SetAddress(partner.Address{
			Street:       "Av. Paulista",
			Number:       "1000",
			Complement:   "Sala 42",
			Neighborhood: "Bela Vista",
			City:         "Sao Paulo",
			State:        "SP",
			Country:      "Brasil",
			ZipCode:      "01310-100",
		}))

		resp := ToCustomerResponse(customer)

		assert.Equal(t, customer.ID, resp.ID)
		assert.Equal(t, "Maria Silva", resp.Name)
		assert.Equal(t, "maria@example.com", resp.Email)
		assert.Equal(t, "52998224725", resp.Document)
		assert.Equal(t, "female", resp.Gender)
		assert.Equal(t, &birth, resp.BirthDate)
		assert.Equal(t, "+55 11 91234-5678", resp.Phone)
		assert.Equal(t, "sms", resp.PreferredChannel)
		assert.True(t, resp.MarketingConsent)
		assert.False(t, resp.DataSharingConsent)
		assert.Equal(t, string(customer.Status), resp.Status)
		assert.Equal(t, customer.CreatedAt, resp.CreatedAt)
		assert.Equal(t, customer.UpdatedAt, resp.UpdatedAt)

		require.NotNil(t, resp.Address)
		assert.Equal(t, "Av. Paulista", resp.Address.Street)
		assert.Equal(t, "1000", resp.Address.Number)
		assert.Equal(t, "Sala 42", resp.Address.Complement)
		assert.Equal(t, "Bela Vista", resp.Address.Neighborhood)
		assert.Equal(t, "Sao Paulo", resp.Address.City)
		assert.Equal(t, "SP", resp.Address.State)
		assert.Equal(t, "Brasil", resp.Address.Country)
		assert.Equal(t, "01310-100", resp.Address.ZipCode)
	})

	t.Run("omits address when none is set", func(t *testing.T) {
		customer, err := partner.NewCustomer("Joao Souza", "joao@example.com", "52998224725", "tester")
		require.NoError(t, err)

		resp := ToCustomerResponse(customer)

		assert.Nil(t, resp.Address)
	})
}

func TestToDomainAddress(t *testing.T) {
	payload := &AddressPayload{
		Street:       "Rua Augusta",
		Number:       "500",
		Complement:   "Apto 12",
		Neighborhood: "Consolacao",
		City:         "Sao Paulo",
		State:        "SP",
		Country:      "Brasil",
		ZipCode:      "01304-000",
	}

	addr := toDomainAddress(payload)

	assert.Equal(t, payload.Street, addr.Street)
	assert.Equal(t, payload.Number, addr.Number)
	assert.Equal(t, payload.Complement, addr.Complement)
	assert.Equal(t, payload.Neighborhood, addr.Neighborhood)
	assert.Equal(t, payload.City, addr.City)
	assert.Equal(t, payload.State, addr.State)
	assert.Equal(t, payload.Country, addr.Country)
	assert.Equal(t, payload.ZipCode, addr.ZipCode)
}
