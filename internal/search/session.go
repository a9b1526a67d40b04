package search

import (
	"context"
	"sort"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/logger"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/models"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/places"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State of a search session.
type State int

const (
	// Idle means no search has completed; no pages are held.
	Idle State = iota
	// Searching means a submit or page fetch is in flight.
	Searching
	// Loaded means at least one page is held. There is no terminal
	// state: a session stays Loaded until a new search resets it.
	Loaded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Loaded:
		return "loaded"
	}
	return "unknown"
}

// Criterion selects the view ordering of the current page.
type Criterion string

const (
	SortDistance     Criterion = "distance"
	SortPriceLowHigh Criterion = "price_low_to_high"
	SortPriceHighLow Criterion = "price_high_to_low"
)

// Searcher fetches one page of raw places near origin. cursor is the
// provider's opaque continuation token, empty for the first page.
type Searcher interface {
	Search(ctx context.Context, origin models.Coordinate, keyword, cursor string) (*places.GoogleSearchResponse, error)
}

// Config wires a session's collaborators.
type Config struct {
	Geocoder places.Geocoder
	Searcher Searcher
	// SettleDelay is waited before a continuation cursor is used. The
	// provider needs a moment before a fresh cursor is valid; this is
	// their timing contract, kept configurable rather than hardcoded.
	SettleDelay time.Duration
	Normalizer  *places.Normalizer
}

// Session holds the fetched pages of one search, the current page
// index, the base coordinate, and the last continuation cursor.
//
// A session is owned by exactly one client and is not safe for
// concurrent use; the caller must not overlap Submit/NextPage calls.
type Session struct {
	id         string
	geocoder   places.Geocoder
	searcher   Searcher
	settle     time.Duration
	normalizer *places.Normalizer
	log        *zap.SugaredLogger

	state     State
	location  string
	term      string
	origin    *models.Coordinate
	pages     [][]models.Restaurant
	pageIndex int
	cursor    string
	criterion Criterion
}

func New(cfg Config) *Session {
	normalizer := cfg.Normalizer
	if normalizer == nil {
		normalizer = places.NewNormalizer()
	}
	return &Session{
		id:         uuid.New().String(),
		geocoder:   cfg.Geocoder,
		searcher:   cfg.Searcher,
		settle:     cfg.SettleDelay,
		normalizer: normalizer,
		log:        logger.GetLogger("search"),
		state:      Idle,
		criterion:  SortDistance,
	}
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) PageIndex() int {
	return s.pageIndex
}

func (s *Session) PageCount() int {
	return len(s.pages)
}

// HasNextPage reports whether a continuation cursor is held.
func (s *Session) HasNextPage() bool {
	return s.cursor != ""
}

// Origin returns the base coordinate of the current search, or nil
// before any search completed.
func (s *Session) Origin() *models.Coordinate {
	return s.origin
}

// Submit starts a new search: all pages are cleared, the location is
// re-geocoded, and page 0 is fetched. Any failure resets the session to
// Idle with no partial state retained.
func (s *Session) Submit(ctx context.Context, location, term string) error {
	if location == "" || term == "" {
		return apperrors.New(apperrors.Validation, "location and term are required")
	}

	s.reset()
	s.state = Searching

	coord, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		s.reset()
		return err
	}

	resp, err := s.searcher.Search(ctx, coord, term, "")
	if err != nil {
		s.reset()
		return err
	}

	s.location = location
	s.term = term
	s.origin = &coord
	s.pages = [][]models.Restaurant{s.normalizePage(resp.Results)}
	s.pageIndex = 0
	s.cursor = resp.NextPageToken
	s.state = Loaded

	s.log.Infow("search submitted",
		"session", s.id,
		"location", location,
		"term", term,
		"results", len(resp.Results),
		"has_next_page", s.cursor != "",
	)

	return nil
}

// NextPage fetches the next page using the stored coordinate and
// cursor; the location is never re-geocoded mid-pagination. Returns
// false without error when no cursor is held (no-op). On failure the
// already-fetched pages are kept.
func (s *Session) NextPage(ctx context.Context) (bool, error) {
	if s.state != Loaded || s.cursor == "" {
		return false, nil
	}

	s.state = Searching
	if err := s.waitSettle(ctx); err != nil {
		s.state = Loaded
		return false, err
	}

	resp, err := s.searcher.Search(ctx, *s.origin, s.term, s.cursor)
	if err != nil {
		s.state = Loaded
		return false, err
	}

	s.cursor = resp.NextPageToken
	if len(resp.Results) > 0 {
		s.pages = append(s.pages, s.normalizePage(resp.Results))
		s.pageIndex++
	}
	s.state = Loaded

	s.log.Infow("next page fetched",
		"session", s.id,
		"page", s.pageIndex,
		"results", len(resp.Results),
	)

	return len(resp.Results) > 0, nil
}

// PrevPage moves the view to the prior page. Purely local: nothing is
// re-fetched. Returns false at page 0 (no-op).
func (s *Session) PrevPage() bool {
	if s.pageIndex == 0 {
		return false
	}
	s.pageIndex--
	return true
}

// SetSortFilter selects the ordering applied to the current page's
// view. The stored pages are never mutated.
func (s *Session) SetSortFilter(c Criterion) error {
	switch c {
	case SortDistance, SortPriceLowHigh, SortPriceHighLow:
		s.criterion = c
		return nil
	}
	return apperrors.Validationf("unknown sort criterion %q", string(c))
}

// CurrentPage returns the current page's records ordered by the active
// criterion. The sort is stable: ties keep their input order.
func (s *Session) CurrentPage() []models.Restaurant {
	if len(s.pages) == 0 {
		return nil
	}

	page := s.pages[s.pageIndex]
	view := make([]models.Restaurant, len(page))
	copy(view, page)

	switch s.criterion {
	case SortDistance:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].DistanceMeters < view[j].DistanceMeters
		})
	case SortPriceLowHigh:
		sort.SliceStable(view, func(i, j int) bool {
			return len(view[i].PriceTier) < len(view[j].PriceTier)
		})
	case SortPriceHighLow:
		sort.SliceStable(view, func(i, j int) bool {
			return len(view[i].PriceTier) > len(view[j].PriceTier)
		})
	}

	return view
}

func (s *Session) normalizePage(raw []places.GooglePlace) []models.Restaurant {
	records := make([]models.Restaurant, 0, len(raw))
	for _, p := range raw {
		records = append(records, s.normalizer.FromGoogle(p, s.origin, s.location))
	}
	return records
}

// waitSettle blocks for the cursor settling delay, honoring ctx.
func (s *Session) waitSettle(ctx context.Context) error {
	if s.settle <= 0 {
		return nil
	}
	timer := time.NewTimer(s.settle)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Session) reset() {
	s.state = Idle
	s.location = ""
	s.term = ""
	s.origin = nil
	s.pages = nil
	s.pageIndex = 0
	s.cursor = ""
}
