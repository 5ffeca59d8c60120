package validate_test

import (
	"testing"

	"github.com/Astemirdum/car-rating-service/pkg/validate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type carReq struct {
	Make  string `json:"make" validate:"notblank,max=20"`
	Model string `json:"model" validate:"notblank,max=20"`
}

type rateReq struct {
	CarID int `json:"car_id" validate:"required"`
	Rate  int `json:"rate" validate:"gte=1,lte=5"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	v := validate.NewCustomValidator()

	tests := []struct {
		name string
		in   any
		want validate.FieldErrors
	}{
		{
			name: "ok",
			in:   carReq{Make: "Jeep", Model: "Cherokee"},
		},
		{
			name: "blank make",
			in:   carReq{Make: "  ", Model: "Cherokee"},
			want: validate.FieldErrors{"make": {"This field may not be blank."}},
		},
		{
			name: "model too long",
			in:   carReq{Make: "Jeep", Model: "abcdefghijklmnopqrstu"},
			want: validate.FieldErrors{"model": {"Ensure this field has no more than 20 characters."}},
		},
		{
			name: "multibyte runes within limit",
			in:   carReq{Make: "Škoda", Model: "Октавиа"},
		},
		{
			name: "rate too high",
			in:   rateReq{CarID: 1, Rate: 6},
			want: validate.FieldErrors{"rate": {"Ensure this value is less than or equal to 5."}},
		},
		{
			name: "rate too low and car missing",
			in:   rateReq{Rate: 0},
			want: validate.FieldErrors{
				"car_id": {"This field is required."},
				"rate":   {"Ensure this value is greater than or equal to 1."},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.in)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			var fe validate.FieldErrors
			require.True(t, errors.As(err, &fe))
			require.Equal(t, tt.want, fe)
		})
	}
}

func TestFieldErrors_Error(t *testing.T) {
	fe := validate.FieldErrors{}
	fe.Add("rate", "bad")
	fe.Add("car_id", "missing")
	require.Equal(t, "car_id: missing; rate: bad", fe.Error())
}
