package scrape

import (
	"context"
	"fmt"

	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/mwalsh-dev/statduel/pkg/database"
	"github.com/sirupsen/logrus"
)

// Pipeline runs the full ingestion: three stat tables -> reconcile -> merge ->
// roster ids -> headshot gate -> transactional player-table swap.
//
// Failure semantics are all-or-nothing at the outer boundary: a source that
// cannot be fetched aborts the run and nothing is persisted. Per-entity
// failures inside roster and headshot stages only shrink the result.
type Pipeline struct {
	db         *database.DB
	fetcher    *Fetcher
	roster     *RosterClient
	headshots  *HeadshotVerifier
	logger     *logrus.Logger
	season     string
	maxPlayers int
}

func NewPipeline(db *database.DB, fetcher *Fetcher, logger *logrus.Logger, season string, maxPlayers int) *Pipeline {
	return &Pipeline{
		db:         db,
		fetcher:    fetcher,
		roster:     NewRosterClient(fetcher, logger),
		headshots:  NewHeadshotVerifier(fetcher, logger),
		logger:     logger,
		season:     season,
		maxPlayers: maxPlayers,
	}
}

// Run executes one full ingestion and replaces the player store on success.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Infof("Starting ingestion run for season %s", p.season)

	perGame, err := p.fetchReconciled(ctx, PerGameSource(p.season))
	if err != nil {
		return err
	}
	totals, err := p.fetchReconciled(ctx, TotalsSource(p.season))
	if err != nil {
		return err
	}
	advanced, err := p.fetchReconciled(ctx, AdvancedSource(p.season))
	if err != nil {
		return err
	}

	merged := MergePlayers(perGame, totals, advanced, p.maxPlayers)
	p.logger.Infof("Merged %d players from %d per-game rows", len(merged), len(perGame))

	ids := p.roster.ResolvePlayerIDs(ctx, merged)
	p.logger.Infof("Resolved roster ids for %d of %d players", len(ids), len(merged))

	verified := p.headshots.Verify(ctx, merged, ids)
	p.logger.Infof("Verified headshots for %d of %d identified players", len(verified), len(ids))

	if len(verified) == 0 {
		return fmt.Errorf("ingestion produced no playable players, keeping previous data")
	}

	if err := models.ReplaceAllPlayers(p.db, verified); err != nil {
		return fmt.Errorf("failed to replace player table: %w", err)
	}

	p.logger.Infof("Ingestion run complete: %d players stored", len(verified))
	return nil
}

func (p *Pipeline) fetchReconciled(ctx context.Context, src TableSource) ([]StatRow, error) {
	doc, err := p.fetcher.GetDocument(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s table: %w", src.Name, err)
	}

	rows := ExtractRows(doc, src)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s table yielded no rows, markup may have changed", src.Name)
	}

	reconciled := ReconcileTrades(rows)
	p.logger.Debugf("Extracted %d rows (%d after trade reconciliation) from %s", len(rows), len(reconciled), src.Name)
	return reconciled, nil
}
