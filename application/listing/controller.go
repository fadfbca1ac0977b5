package listing

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	listingrepo "github.com/afribrok/marketplace-bff/repository/listing"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/afribrok/marketplace-bff/utils/logger"
	"github.com/afribrok/marketplace-bff/utils/querystate"
	"go.uber.org/zap"
)

// ErrSuperseded is returned by a fetch whose response was dropped because a
// newer fetch started, or the filters changed, while it was in flight.
var ErrSuperseded = stderrors.New("listings fetch superseded by a newer request")

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "idle"
}

type actionKind int

const (
	actionFiltersChanged actionKind = iota
	actionFetchStarted
	actionFetchSucceeded
	actionFetchFailed
)

type action struct {
	kind    actionKind
	filters model.FilterState
	seq     uint64
	key     string
	result  *model.ListingSearchResult
	err     *model.FetchError
}

type viewState struct {
	state        State
	filters      model.FilterState
	listings     []model.Listing
	pagination   model.Pagination
	err          *model.FetchError
	seq          uint64
	requestedKey string
}

// reduce is the whole state machine. Results for anything but the latest
// request are ignored, so a slow response can never overwrite a newer one.
func reduce(s viewState, a action) viewState {
	switch a.kind {
	case actionFiltersChanged:
		s.filters = a.filters
		if s.state == StateLoading && a.key != s.requestedKey {
			// the in-flight request no longer matches what is on screen
			s.seq = a.seq
		}
		if s.state != StateLoading || a.key != s.requestedKey {
			s.state = StateIdle
		}
	case actionFetchStarted:
		s.state = StateLoading
		s.seq = a.seq
		s.requestedKey = a.key
		s.err = nil
	case actionFetchSucceeded:
		if a.seq != s.seq {
			return s
		}
		filtered := sortListings(applyClientFilters(a.result.Listings, s.filters), s.filters.SortBy)
		s.listings, s.pagination = paginate(filtered, a.result.Pagination, s.filters)
		s.filters.Page = s.pagination.Page
		s.state = StateSuccess
		s.err = nil
	case actionFetchFailed:
		if a.seq != s.seq {
			return s
		}
		// previous listings stay on screen next to the error banner
		s.state = StateError
		s.err = a.err
	}
	return s
}

// Controller owns "what the user is currently browsing": filter state, the
// in-flight request and the visible page. It is safe for concurrent use.
type Controller struct {
	repo  listingrepo.ListingRepository
	scope constant.ListingScope

	mu      sync.Mutex
	view    viewState
	cancel  context.CancelFunc
	nextSeq uint64
}

func NewController(repo listingrepo.ListingRepository, scope constant.ListingScope, initial model.FilterState) *Controller {
	filters := querystate.Normalize(initial)
	return &Controller{
		repo:  repo,
		scope: scope,
		view: viewState{
			state:      StateIdle,
			filters:    filters,
			listings:   []model.Listing{},
			pagination: model.Pagination{Page: filters.Page, Limit: filters.PageSize},
		},
	}
}

// SetFilter changes one filter dimension.
func (c *Controller) SetFilter(field constant.FilterField, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := applyFilter(c.view.filters, field, value)
	if err != nil {
		return err
	}
	act := action{kind: actionFiltersChanged, filters: next, key: querystate.String(next)}
	if c.view.state == StateLoading && act.key != c.view.requestedKey {
		if c.cancel != nil {
			c.cancel()
			c.cancel = nil
		}
		c.nextSeq++
		act.seq = c.nextSeq
	}
	c.view = reduce(c.view, act)
	return nil
}

func (c *Controller) Filters() model.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.filters
}

// QueryString is the canonical URL form of the current filters.
func (c *Controller) QueryString() string {
	return querystate.String(c.Filters())
}

// Fetch requests the current filters, cancelling any fetch still in flight.
func (c *Controller) Fetch(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.nextSeq++
	seq := c.nextSeq
	filters := c.view.filters
	c.view = reduce(c.view, action{kind: actionFetchStarted, seq: seq, key: querystate.String(filters)})
	c.mu.Unlock()

	result, err := c.repo.Search(reqCtx, c.scope, apiParams(filters))
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.view.seq {
		return ErrSuperseded
	}
	c.cancel = nil

	if err != nil {
		fetchErr := toFetchError(err)
		logger.Ctx(ctx).Warn("[Controller.Fetch] err repo.Search",
			zap.String("error", err.Error()),
			zap.Int("status", fetchErr.Status),
			zap.String("url", fetchErr.URL),
		)
		c.view = reduce(c.view, action{kind: actionFetchFailed, seq: seq, err: fetchErr})
		return errors.FromAPIError(err)
	}
	if result == nil {
		result = &model.ListingSearchResult{}
	}
	c.view = reduce(c.view, action{kind: actionFetchSucceeded, seq: seq, result: result})
	return nil
}

// Sync fetches only when the filters changed since the last request.
func (c *Controller) Sync(ctx context.Context) error {
	c.mu.Lock()
	key := querystate.String(c.view.filters)
	fresh := c.view.seq > 0 && key == c.view.requestedKey
	c.mu.Unlock()

	if fresh {
		return nil
	}
	return c.Fetch(ctx)
}

// Retry repeats the last request regardless of whether filters changed.
func (c *Controller) Retry(ctx context.Context) error {
	return c.Fetch(ctx)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.state
}

func (c *Controller) View() model.ListingsView {
	c.mu.Lock()
	defer c.mu.Unlock()

	listings := make([]model.Listing, len(c.view.listings))
	copy(listings, c.view.listings)

	var fetchErr *model.FetchError
	if c.view.err != nil {
		e := *c.view.err
		fetchErr = &e
	}
	return model.ListingsView{
		State:       c.view.state.String(),
		Filters:     c.view.filters,
		QueryString: querystate.String(c.view.filters),
		Listings:    listings,
		Pagination:  c.view.pagination,
		Error:       fetchErr,
	}
}

func toFetchError(err error) *model.FetchError {
	apiErr, ok := marketapi.AsAPIError(err)
	if !ok {
		return &model.FetchError{Message: err.Error()}
	}
	fe := &model.FetchError{Message: apiErr.Message, Status: apiErr.Status, URL: apiErr.URL}
	switch {
	case apiErr.IsAuth():
		fe.AuthRequired = true
		fe.Message = "Please sign in to browse these listings."
	case apiErr.IsNetwork():
		fe.Message = "Unable to reach the marketplace. Check your connection and retry."
	}
	return fe
}
