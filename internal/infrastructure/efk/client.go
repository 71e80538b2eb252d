package efk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"financement/internal/domain"
	"financement/internal/domain/entities"
	"financement/internal/ports/output"
	"financement/pkg/format"
)

// DefaultTimeout bounds each API call.
const DefaultTimeout = 30 * time.Second

var _ output.FinancingSource = (*Client)(nil)

// Client talks to the EFK frontend API
// (https://politikfinanzierung.efk.admin.ch/api/frontend/v1).
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

type financingsResponse struct {
	Data struct {
		TreeRoots []entities.FinancingNode `json:"tree_roots"`
	} `json:"data"`
}

type totals struct {
	Total amount `json:"total"`
}

type formResponse struct {
	Data struct {
		FormData *struct {
			Totals *totals `json:"totals"`
		} `json:"form_data"`
		Totals json.RawMessage `json:"totals"`
	} `json:"data"`
}

// amount accepts "CHF 1'386'630.00" as well as a bare JSON number.
type amount string

func (a *amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*a = ""
		return nil
	}
	*a = amount(n.String())
	return nil
}

func (c *Client) CampaignFinancings(ctx context.Context, lang string) ([]entities.FinancingNode, error) {
	var resp financingsResponse
	if err := c.get(ctx, fmt.Sprintf("%s/%s/campaign_financings", c.baseURL, url.PathEscape(lang)), &resp); err != nil {
		return nil, fmt.Errorf("get campaign financings (%s): %w", lang, err)
	}
	return resp.Data.TreeRoots, nil
}

// FormTotal reads form_data.totals.total, else totals.total. A form without
// totals counts as zero.
func (c *Client) FormTotal(ctx context.Context, lang string, campaignID, formID entities.NodeID) (decimal.Decimal, error) {
	u := fmt.Sprintf("%s/%s/campaigns/%s/forms/%s", c.baseURL,
		url.PathEscape(lang), url.PathEscape(campaignID.String()), url.PathEscape(formID.String()))
	var resp formResponse
	if err := c.get(ctx, u, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("get form %s/%s: %w", campaignID, formID, err)
	}

	if fd := resp.Data.FormData; fd != nil && fd.Totals != nil {
		return format.ParseCHF(string(fd.Totals.Total)), nil
	}
	var t totals
	if len(resp.Data.Totals) > 0 && json.Unmarshal(resp.Data.Totals, &t) == nil {
		return format.ParseCHF(string(t.Total)), nil
	}
	return decimal.Zero, nil
}

func (c *Client) get(ctx context.Context, u string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
