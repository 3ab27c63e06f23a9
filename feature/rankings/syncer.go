package rankings

import (
	"context"
	"fmt"
	"time"

	"rankings-sync/core/notion"
	"rankings-sync/feature/rankings/models"

	"go.uber.org/zap"
)

// Stats counts the store mutations performed by one sync run.
type Stats struct {
	// Archived is the number of pages archived before inserting.
	Archived int
	// Created is the number of pages created. On failure this reflects how
	// far the run got before aborting.
	Created int
}

// Syncer replaces the contents of a ranking store with a fresh ranking.
// Implementations are not safe for concurrent use; callers serialize runs.
type Syncer interface {
	UpdateDB(ctx context.Context, players []models.Player) (Stats, error)
}

// NotionSyncer synchronizes a player ranking into a Notion database using
// full-replace reconciliation: every existing page is archived, then one
// page per player is inserted in feed order.
type NotionSyncer struct {
	client     notion.Client
	databaseID string
	logger     *zap.Logger

	// now is swapped in tests to pin the date property.
	now func() time.Time
}

// NewNotionSyncer verifies the credential/database pair once and returns a
// syncer bound to it. Verification failures surface as *notion.AuthError.
func NewNotionSyncer(ctx context.Context, client notion.Client, databaseID string, logger *zap.Logger) (*NotionSyncer, error) {
	if err := client.VerifyDatabase(ctx, databaseID); err != nil {
		return nil, err
	}

	return &NotionSyncer{
		client:     client,
		databaseID: databaseID,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// CurrentPageIDs returns the ids of the pages currently in the database.
// Only a single query call is issued; cursor traversal is out of scope.
func (s *NotionSyncer) CurrentPageIDs(ctx context.Context) ([]string, error) {
	refs, err := s.client.QueryPages(ctx, s.databaseID)
	if err != nil {
		return nil, fmt.Errorf("listing current pages: %w", err)
	}

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids, nil
}

// ArchivePages archives the given pages in order, stopping at the first page
// the store rejects. Pages after the failed one are left untouched.
func (s *NotionSyncer) ArchivePages(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := s.client.ArchivePage(ctx, id); err != nil {
			return fmt.Errorf("archiving page %s: %w", id, err)
		}
	}
	return nil
}

// BuildPage builds the store payload for one player: icon from rank, name as
// rich-text title, numeric rank, and today's date (start bound only). When
// forInsertion is true the target database is attached as the page parent;
// otherwise the parent is omitted (payload shape for a future in-place
// update).
func (s *NotionSyncer) BuildPage(player models.Player, forInsertion bool) models.PageObject {
	page := models.PageObject{
		Icon: models.Icon{Emoji: EmojiForRank(player.Rank)},
		Properties: models.Properties{
			PlayerName: models.TitleProperty{
				Title: []models.RichText{
					{Type: "text", Text: models.TextContent{Content: player.Name}},
				},
			},
			Rank: models.NumberProperty{Number: player.Rank},
			Date: models.DateProperty{
				Date: models.DateValue{Start: s.now().Format("2006-01-02")},
			},
		},
	}

	if forInsertion {
		page.Parent = &models.Parent{DatabaseID: s.databaseID}
	}

	return page
}

// UpdateDB replaces every page in the database with one page per player, in
// input order. If archival fails the run aborts before any insert so stale
// and fresh pages are never mixed. Insertion fails fast on the first
// rejected page; the store may then hold fewer pages than the input ranking,
// which is the accepted risk of the full-replace design.
func (s *NotionSyncer) UpdateDB(ctx context.Context, players []models.Player) (Stats, error) {
	ids, err := s.CurrentPageIDs(ctx)
	if err != nil {
		return Stats{}, err
	}

	if err := s.ArchivePages(ctx, ids); err != nil {
		return Stats{}, err
	}

	stats := Stats{Archived: len(ids)}
	for _, player := range players {
		page := s.BuildPage(player, true)
		if err := s.client.CreatePage(ctx, page); err != nil {
			return stats, fmt.Errorf("creating page for %q: %w", player.Name, err)
		}
		stats.Created++
	}

	s.logger.Info("Ranking synchronized",
		zap.Int("archived", stats.Archived),
		zap.Int("created", stats.Created))

	return stats, nil
}
