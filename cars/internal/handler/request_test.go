package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRateRequest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		body   string
		carID  int64
		rate   int
		fields map[string][]string
	}{
		{name: "ints", body: `{"car_id":1,"rate":3}`, carID: 1, rate: 3},
		{name: "whole float", body: `{"car_id":1,"rate":3.0}`, carID: 1, rate: 3},
		{name: "strings", body: `{"car_id":" 2 ","rate":"5"}`, carID: 2, rate: 5},
		{name: "out of range is left to the service", body: `{"car_id":1,"rate":6}`, carID: 1, rate: 6},
		{name: "fraction", body: `{"car_id":1,"rate":3.5}`, carID: 1,
			fields: map[string][]string{"rate": {msgInvalidInteger}}},
		{name: "bool rate", body: `{"car_id":1,"rate":true}`, carID: 1,
			fields: map[string][]string{"rate": {msgInvalidInteger}}},
		{name: "null", body: `{"car_id":null,"rate":null}`,
			fields: map[string][]string{"car_id": {msgRequired}, "rate": {msgRequired}}},
		{name: "list car id", body: `{"car_id":[1],"rate":1}`, rate: 1,
			fields: map[string][]string{"car_id": {"Incorrect type. Expected pk value, received list."}}},
		{name: "zero car id", body: `{"car_id":0,"rate":1}`, rate: 1,
			fields: map[string][]string{"car_id": {`Invalid pk "0" - object does not exist.`}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var raw rateRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &raw))
			req, fe := raw.parse()
			if tt.fields != nil {
				require.Equal(t, tt.fields, map[string][]string(fe))
				return
			}
			require.Nil(t, fe)
			require.Equal(t, tt.carID, req.CarID)
			require.Equal(t, tt.rate, req.Rate)
		})
	}
}
