package output

import (
	"context"

	"github.com/shopspring/decimal"

	"financement/internal/domain/entities"
)

// FinancingSource reads the EFK political financing API.
type FinancingSource interface {
	// CampaignFinancings returns the tree roots listed for lang.
	CampaignFinancings(ctx context.Context, lang string) ([]entities.FinancingNode, error)
	// FormTotal returns the total declared in one form.
	FormTotal(ctx context.Context, lang string, campaignID, formID entities.NodeID) (decimal.Decimal, error)
}
