package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"financement/internal/domain"
	"financement/internal/domain/entities"
	"financement/internal/ports/input"
	"financement/internal/ports/output"
	"financement/pkg/tz"
)

// LastUpdateLayout is the canonical dataset timestamp format.
const LastUpdateLayout = "2006-01-02 15:04"

var (
	voteDatePattern   = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)
	leadingVoteDate   = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}\s*`)
	electionMarkers   = []string{"élection", "election", "elezione", "wahl"}
	supporterMarkers  = []string{"adoption", "annahme", "adozione"}
	opponentMarkers   = []string{"rejet", "ablehnung", "rigetto"}
	budgetFormMarkers = []string{"recettes budgét", "budgetierte einnahmen", "entrate preventivate"}
)

// StageError tells which step of the collection failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("collect error at %s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

var _ input.CollectUseCase = (*CollectService)(nil)

// CollectService builds the dataset from the EFK financing declarations.
type CollectService struct {
	source output.FinancingSource
	logger *log.Logger
	// BaseLang is the language whose tree drives the collection.
	BaseLang domain.Locale
}

func NewCollectService(source output.FinancingSource, logger *log.Logger) *CollectService {
	return &CollectService{
		source:   source,
		logger:   logger,
		BaseLang: domain.LocaleFR,
	}
}

// Collect lists upcoming votations with the budgets declared for and against
// them. Only the base tree is mandatory: missing translations and
// unreadable forms are logged and skipped.
func (s *CollectService) Collect(ctx context.Context, now time.Time) (*entities.CampaignDataset, error) {
	now = now.In(tz.Zurich)
	base := s.BaseLang.String()

	roots, err := s.source.CampaignFinancings(ctx, base)
	if err != nil {
		return nil, &StageError{Stage: "campaign_financings", Err: err}
	}
	s.logger.Info("entrées récupérées depuis l'API", "count", len(roots))

	votations := s.processVotations(ctx, roots, base, now)
	s.logger.Info("votations futures trouvées", "count", len(votations))

	for _, l := range domain.SupportedLocales {
		if l == s.BaseLang || len(votations) == 0 {
			continue
		}
		titles, err := s.titlesByID(ctx, l.String())
		if err != nil {
			s.logger.Warn("⚠️ Titres indisponibles", "lang", l, "err", err)
			continue
		}
		for i := range votations {
			if t, ok := titles[entities.NodeID(votations[i].ID)]; ok && t != "" {
				votations[i].Title[l.String()] = t
			}
		}
	}

	s.logSummary(votations)

	dataset := &entities.CampaignDataset{
		LastUpdate: now.Format(LastUpdateLayout),
		Votations:  votations,
	}
	if len(votations) > 0 {
		dataset.NextVoteDate = votations[0].Date
	}
	return dataset, nil
}

func (s *CollectService) processVotations(ctx context.Context, roots []entities.FinancingNode, lang string, now time.Time) []entities.Votation {
	votations := []entities.Votation{}
	for _, root := range roots {
		if root.Type != entities.NodeCampaignFinancing || !IsFutureVotation(root.Label, now) {
			continue
		}
		v := entities.Votation{
			ID:    root.ID.String(),
			Date:  ExtractVoteDate(root.Label),
			Title: entities.LocalizedText{lang: ExtractTitle(root.Label)},
		}
		var supporters, opponents decimal.Decimal
		for _, actor := range actorsOf(root) {
			for _, campaign := range childrenOfType(actor.Children, entities.NodeCampaign) {
				form, ok := budgetForm(campaign)
				if !ok {
					continue
				}
				total, err := s.source.FormTotal(ctx, lang, campaign.ID, form.ID)
				if err != nil {
					s.logger.Warn("⚠️ Formulaire illisible", "campaign", campaign.ID, "form", form.ID, "err", err)
					total = decimal.Zero
				}

				position := CampaignPosition(campaign.Label)
				v.Actors = append(v.Actors, entities.Actor{
					Name:       actor.Label,
					Position:   position,
					Total:      total.InexactFloat64(),
					CampaignID: campaign.ID.String(),
				})
				switch position {
				case entities.PositionSupporter:
					supporters = supporters.Add(total)
					v.SupportersCount++
				case entities.PositionOpponent:
					opponents = opponents.Add(total)
					v.OpponentsCount++
				}
			}
		}
		v.SupportersTotal = supporters.InexactFloat64()
		v.OpponentsTotal = opponents.InexactFloat64()

		if v.Date != "" {
			votations = append(votations, v)
		}
	}
	return votations
}

func (s *CollectService) titlesByID(ctx context.Context, lang string) (map[entities.NodeID]string, error) {
	roots, err := s.source.CampaignFinancings(ctx, lang)
	if err != nil {
		return nil, err
	}
	titles := make(map[entities.NodeID]string, len(roots))
	for _, root := range roots {
		titles[root.ID] = ExtractTitle(root.Label)
	}
	return titles, nil
}

func (s *CollectService) logSummary(votations []entities.Votation) {
	p := message.NewPrinter(language.MustParse("de-CH"))
	for _, v := range votations {
		s.logger.Info(v.Title.In(s.BaseLang),
			"date", v.Date,
			"soutiens", p.Sprintf("CHF %.0f (%d acteurs)", v.SupportersTotal, v.SupportersCount),
			"opposants", p.Sprintf("CHF %.0f (%d acteurs)", v.OpponentsTotal, v.OpponentsCount),
		)
	}
}

// budgetForm returns the first budgeted-income declaration of a campaign.
func budgetForm(campaign entities.FinancingNode) (entities.FinancingNode, bool) {
	for _, form := range childrenOfType(campaign.Children, entities.NodeForm) {
		if containsAny(strings.ToLower(form.Label), budgetFormMarkers) {
			return form, true
		}
	}
	return entities.FinancingNode{}, false
}

// actorsOf lists the actors of every category under a ballot root.
func actorsOf(root entities.FinancingNode) []entities.FinancingNode {
	var actors []entities.FinancingNode
	for _, category := range childrenOfType(root.Children, entities.NodeActorCategory) {
		actors = append(actors, childrenOfType(category.Children, entities.NodeActor)...)
	}
	return actors
}

// childrenOfType keeps the nodes of the given type.
func childrenOfType(nodes []entities.FinancingNode, nodeType string) []entities.FinancingNode {
	var out []entities.FinancingNode
	for _, n := range nodes {
		if n.Type == nodeType {
			out = append(out, n)
		}
	}
	return out
}

// IsFutureVotation reports whether label names a ballot (not an election)
// dated strictly after now.
func IsFutureVotation(label string, now time.Time) bool {
	if containsAny(strings.ToLower(label), electionMarkers) {
		return false
	}
	m := voteDatePattern.FindStringSubmatch(label)
	if m == nil {
		return false
	}
	voteDate, err := time.ParseInLocation("02.01.2006", m[1]+"."+m[2]+"."+m[3], now.Location())
	if err != nil {
		return false
	}
	return voteDate.After(now)
}

// ExtractVoteDate returns the first DD.MM.YYYY date in label.
func ExtractVoteDate(label string) string {
	return voteDatePattern.FindString(label)
}

// ExtractTitle removes the leading ballot date from label.
func ExtractTitle(label string) string {
	return strings.TrimSpace(leadingVoteDate.ReplaceAllString(label, ""))
}

// CampaignPosition classifies a campaign label as supporting or opposing.
func CampaignPosition(label string) string {
	l := strings.ToLower(label)
	switch {
	case containsAny(l, supporterMarkers):
		return entities.PositionSupporter
	case containsAny(l, opponentMarkers):
		return entities.PositionOpponent
	default:
		return entities.PositionUnknown
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
