package booking

import (
	"errors"
	"net/url"

	"servineo/models"
)

// DefaultRequestPath is the front-end page that creates the job.
const DefaultRequestPath = "/solicitud-trabajo"

var ErrNoSlotsSelected = errors.New("no slots selected")

// BuildRequestTarget encodes the chosen day and slots as
// path?date=YYYY-MM-DD&s=HH:MM-HH:MM&s=... for the job request page.
func BuildRequestTarget(path, dateKey string, slots []models.TimeSlot) (string, error) {
	if len(slots) == 0 {
		return "", ErrNoSlotsSelected
	}
	if path == "" {
		path = DefaultRequestPath
	}

	params := url.Values{}
	params.Set("date", dateKey)
	for _, s := range slots {
		params.Add("s", s.Range())
	}
	return path + "?" + params.Encode(), nil
}

// ParseRequestTarget is the inverse of BuildRequestTarget's query string.
func ParseRequestTarget(rawQuery string) (string, []string, error) {
	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", nil, err
	}
	return params.Get("date"), params["s"], nil
}
