package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() *requests.RegisterRequest {
	return &requests.RegisterRequest{
		FullName: "Jane Roe",
		Email:    "jane@example.com",
		Password: "Str0ngPass!",
		Role:     "patient",
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validRegisterRequest()))
	})

	t.Run("password rules", func(t *testing.T) {
		cases := map[string]string{
			"too short":       "Ab!",
			"no special char": "Abcdefgh1",
			"no uppercase":    "abcdefgh1!",
		}
		for name, password := range cases {
			t.Run(name, func(t *testing.T) {
				request := validRegisterRequest()
				request.Password = password
				assert.Error(t, ValidateStruct(request))
			})
		}
	})

	t.Run("role must be patient or doctor", func(t *testing.T) {
		request := validRegisterRequest()
		request.Role = "admin"
		assert.Error(t, ValidateStruct(request))

		request.Role = "doctor"
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("email format enforced", func(t *testing.T) {
		request := validRegisterRequest()
		request.Email = "not-an-email"
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateDeclareSlotRequest(t *testing.T) {
	valid := func() *requests.DeclareSlotRequest {
		return &requests.DeclareSlotRequest{
			Date:      "2025-03-10",
			StartTime: "09:00",
			EndTime:   "10:00",
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid()))
	})

	t.Run("date must be yyyy-mm-dd and a real day", func(t *testing.T) {
		for _, date := range []string{"10-03-2025", "2025/03/10", "2025-02-30", "2025-13-01"} {
			request := valid()
			request.Date = date
			assert.Error(t, ValidateStruct(request), date)
		}
	})

	t.Run("times must be hh:mm", func(t *testing.T) {
		for _, clock := range []string{"9:00", "09:60", "25:00", "0900"} {
			request := valid()
			request.StartTime = clock
			assert.Error(t, ValidateStruct(request), clock)
		}
	})
}

func TestIsValidTimeRange(t *testing.T) {
	assert.True(t, IsValidTimeRange("09:00", "10:00"))
	assert.False(t, IsValidTimeRange("10:00", "09:00"))
	assert.False(t, IsValidTimeRange("09:00", "09:00"))
	assert.False(t, IsValidTimeRange("not-a-time", "10:00"))
}
