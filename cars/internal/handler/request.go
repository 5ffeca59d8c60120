package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Astemirdum/car-rating-service/cars/internal/model"
	"github.com/Astemirdum/car-rating-service/pkg/validate"
)

// rateRequest keeps raw values so type problems can be reported per field.
type rateRequest struct {
	CarID json.RawMessage `json:"car_id"`
	Rate  json.RawMessage `json:"rate"`
}

var integerRe = regexp.MustCompile(`^-?\d+(\.0*)?$`)

func (r rateRequest) parse() (model.RateRequest, validate.FieldErrors) {
	var (
		req model.RateRequest
		fe  = validate.FieldErrors{}
	)
	switch {
	case isAbsent(r.CarID):
		fe.Add("car_id", msgRequired)
	default:
		id, ok := parseInteger(r.CarID)
		if !ok {
			fe.Add("car_id", fmt.Sprintf(msgIncorrectPKType, jsonTypeName(r.CarID)))
		} else if id <= 0 {
			fe.Add("car_id", fmt.Sprintf(msgPKNotExist, id))
		}
		req.CarID = id
	}
	switch {
	case isAbsent(r.Rate):
		fe.Add("rate", msgRequired)
	default:
		rate, ok := parseInteger(r.Rate)
		if !ok {
			fe.Add("rate", msgInvalidInteger)
		}
		req.Rate = int(rate)
	}
	if len(fe) > 0 {
		return req, fe
	}
	return req, nil
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// parseInteger accepts JSON numbers and strings holding a whole number,
// including a zero fractional part such as "3.0".
func parseInteger(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	var s string
	switch {
	case len(raw) > 0 && raw[0] == '"':
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
	case len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')):
		s = string(raw)
	default:
		return 0, false
	}
	if !integerRe.MatchString(s) {
		return 0, false
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func jsonTypeName(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "NoneType"
	}
	switch raw[0] {
	case '"':
		return "str"
	case 't', 'f':
		return "bool"
	case '[':
		return "list"
	case '{':
		return "dict"
	}
	return "float"
}
