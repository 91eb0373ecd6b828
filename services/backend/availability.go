package backend

import (
	"context"
	"net/http"
	"net/url"

	"servineo/models"
)

// SlotCurrency is the rate unit the backend prices slots in.
const SlotCurrency = "Bs/Hr."

type slotDTO struct {
	HoraInicio string  `json:"horaInicio"`
	HoraFin    string  `json:"horaFin"`
	CostoHora  float64 `json:"costoHora"`
}

type dayAvailabilityDTO struct {
	Horarios []slotDTO `json:"horarios"`
	Mensaje  string    `json:"mensaje,omitempty"`
}

// GetDaySlots fetches a fixer's open slots for dateKey (YYYY-MM-DD), in backend order.
func (c *Client) GetDaySlots(ctx context.Context, providerID, dateKey string) (*models.DayAvailability, error) {
	path := fixerBase + "/" + url.PathEscape(providerID) + "/availability?" + url.Values{"date": {dateKey}}.Encode()
	var out dayAvailabilityDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	day := &models.DayAvailability{Message: out.Mensaje}
	for _, h := range out.Horarios {
		day.Slots = append(day.Slots, models.TimeSlot{
			StartTime:  h.HoraInicio,
			EndTime:    h.HoraFin,
			HourlyRate: h.CostoHora,
			Currency:   SlotCurrency,
		})
	}
	return day, nil
}
