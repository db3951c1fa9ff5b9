package exceptions

import (
	"errors"
	"fmt"
	"hospital-booking-service/internal/pkg/constvars"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodeOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "custom error", err: ErrSlotUnavailable(nil), want: constvars.StatusConflict},
		{name: "wrapped custom error", err: fmt.Errorf("booking: %w", ErrHospitalNotFound(nil)), want: constvars.StatusNotFound},
		{name: "plain error", err: errors.New("boom"), want: constvars.StatusInternalServerError},
		{name: "rate limited", err: ErrTooManyRequests(nil), want: constvars.StatusTooManyRequests},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCodeOf(tc.err))
		})
	}
}

func TestBuildNewCustomError(t *testing.T) {
	t.Run("dev message includes cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrRedisGet(cause)

		assert.Contains(t, err.DevMessage, "connection refused")
		assert.ErrorIs(t, err, cause)
		require.Len(t, err.Locations, 1)
		assert.Contains(t, err.Locations[0].FunctionName, "TestBuildNewCustomError")
	})

	t.Run("nested custom error keeps inner locations", func(t *testing.T) {
		inner := ErrRecordStoreConflict(nil, constvars.RecordCollectionDoctors)
		outer := ErrBookingInProgress(inner)

		assert.Len(t, outer.Locations, 2)
		assert.Equal(t, constvars.StatusConflict, outer.StatusCode)
	})
}

func TestFormatFirstValidationError(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Level string `validate:"oneof=low high"`
	}

	err := validator.New().Struct(payload{Level: "low"})
	assert.Equal(t, "name is required", FormatFirstValidationError(err))

	assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("other")))
	assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
}
