package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"servineo/models"
)

const fixerBase = "/api/fixers"

// CheckCI asks whether an identity number is free, optionally ignoring one fixer.
func (c *Client) CheckCI(ctx context.Context, ci, excludeID string) (*models.CICheck, error) {
	q := url.Values{}
	q.Set("ci", ci)
	if excludeID != "" {
		q.Set("excludeId", excludeID)
	}
	var out models.CICheck
	if err := c.do(ctx, http.MethodGet, fixerBase+"/check-ci?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateFixer(ctx context.Context, in models.CreateFixerInput) (*models.Fixer, error) {
	var out envelope[models.Fixer]
	if err := c.do(ctx, http.MethodPost, fixerBase, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) GetFixer(ctx context.Context, id string) (*models.Fixer, error) {
	var out envelope[models.Fixer]
	if err := c.do(ctx, http.MethodGet, fixerBase+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// GetFixerByUser returns nil without error when the user has no fixer profile.
func (c *Client) GetFixerByUser(ctx context.Context, userID string) (*models.Fixer, error) {
	var out envelope[*models.Fixer]
	err := c.do(ctx, http.MethodGet, fixerBase+"/user/"+url.PathEscape(userID), nil, &out)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) GetFixersByCategory(ctx context.Context, search string) ([]models.FixersByCategory, error) {
	path := fixerBase + "/by-category"
	if trimmed := strings.TrimSpace(search); trimmed != "" {
		path += "?" + url.Values{"search": {trimmed}}.Encode()
	}
	var out envelope[[]models.FixersByCategory]
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) UpdateIdentity(ctx context.Context, id, ci string) (*models.Fixer, error) {
	return c.putFixer(ctx, id, "identity", map[string]string{"ci": ci})
}

func (c *Client) UpdateLocation(ctx context.Context, id string, loc models.Location) (*models.Fixer, error) {
	return c.putFixer(ctx, id, "location", loc)
}

func (c *Client) UpdateCategories(ctx context.Context, id string, in models.UpdateCategoriesInput) (*models.Fixer, error) {
	return c.putFixer(ctx, id, "categories", in)
}

func (c *Client) UpdatePayments(ctx context.Context, id string, in models.UpdatePaymentsInput) (*models.Fixer, error) {
	return c.putFixer(ctx, id, "payments", in)
}

func (c *Client) AcceptTerms(ctx context.Context, id string) (*models.Fixer, error) {
	return c.putFixer(ctx, id, "terms", map[string]bool{"accepted": true})
}

func (c *Client) putFixer(ctx context.Context, id, resource string, in any) (*models.Fixer, error) {
	var out envelope[models.Fixer]
	if err := c.do(ctx, http.MethodPut, fixerBase+"/"+url.PathEscape(id)+"/"+resource, in, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
