package backend

import (
	"context"
	"net/http"
	"net/url"

	"servineo/models"
)

// GetProviderJobs lists every job scheduled with a provider.
func (c *Client) GetProviderJobs(ctx context.Context, providerID string) ([]models.JobRecord, error) {
	var out envelope[[]models.JobRecord]
	if err := c.do(ctx, http.MethodGet, "/api/jobs/provider/"+url.PathEscape(providerID), nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return []models.JobRecord{}, nil
	}
	return out.Data, nil
}
