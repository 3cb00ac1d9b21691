package dashboard

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"trading-dashboard/internal/domain/dashboard"
	"trading-dashboard/internal/domain/session"
	domain "trading-dashboard/internal/domain/user"
	userusecase "trading-dashboard/internal/usecase/user"
	apperrors "trading-dashboard/pkg/errors"
	"trading-dashboard/pkg/logger"
)

// AccountFetcher loads the account record behind the dashboard.
type AccountFetcher interface {
	GetAccountData(ctx context.Context, in userusecase.GetAccountDataRequest) (*userusecase.GetAccountDataResponse, error)
}

// Config tunes the loader.
type Config struct {
	FetchTimeout      time.Duration // upper bound for the shared fetch
	RenderWait        time.Duration // how long a request waits before rendering Loading
	ChartSymbol       string
	DefaultTimeframe  string
	PlaceholderAvatar string
}

// LoadRequest selects the page for the signed-in user. View and Timeframe
// are the raw query values; empty selects the defaults.
type LoadRequest struct {
	Session   *session.Session
	View      string
	Timeframe string
}

// Page is the assembled dashboard shell.
type Page struct {
	Status   dashboard.Status
	Message  string // placeholder text when Status is not ready
	Profile  dashboard.SidebarProfile
	Nav      []dashboard.NavItem
	View     dashboard.View
	Overview *dashboard.Overview        // ViewMain only
	Chart    *dashboard.ChartWidget     // ViewMain only
	Panel    *dashboard.Panel           // secondary views
	Settings *dashboard.IdentityProfile // ViewSettings only
}

// Usecase assembles dashboard pages. Concurrent loads for the same user
// share one in-flight fetch.
type Usecase struct {
	accounts AccountFetcher
	cfg      Config
	group    singleflight.Group
	log      *zap.Logger
}

// New creates a dashboard Usecase.
func New(accounts AccountFetcher, cfg Config, log *zap.Logger) *Usecase {
	return &Usecase{accounts: accounts, cfg: cfg, log: log}
}

// Load resolves the view and timeframe, fetches the account data and
// assembles the page. Fetch failures never surface as errors; they become
// an error-status page. Errors are returned only for a missing session or
// an invalid view or timeframe.
func (uc *Usecase) Load(ctx context.Context, in LoadRequest) (*Page, error) {
	if in.Session == nil || in.Session.Email == "" {
		return nil, apperrors.ErrUnauthorized
	}

	view, err := dashboard.ParseView(in.View)
	if err != nil {
		return nil, apperrors.ErrInvalidView
	}
	tf, err := dashboard.ParseTimeframe(in.Timeframe, uc.cfg.DefaultTimeframe)
	if err != nil {
		return nil, apperrors.ErrInvalidTimeframe
	}

	nav := dashboard.NewNavigator()
	if err := nav.Navigate(view); err != nil {
		return nil, apperrors.ErrInvalidView
	}

	log := logger.WithContext(ctx, uc.log).With(zap.String("view", view.String()))

	result, err := uc.fetch(ctx, in.Session.Email)
	if err != nil {
		return nil, err
	}

	identity := identityOf(in.Session)
	page := &Page{
		Status: dashboard.Resolve(result),
		Nav:    nav.NavItems(),
		View:   view,
	}

	var lookup domain.Profile
	switch page.Status {
	case dashboard.StatusLoading:
		log.Debug("account data not ready, rendering loading state")
		page.Message = dashboard.Placeholder(page.Status, "")
	case dashboard.StatusError:
		log.Error("failed to fetch account data", zap.Error(result.Err))
		page.Message = dashboard.Placeholder(page.Status, dashboard.FetchFailedMessage)
	case dashboard.StatusEmpty:
		page.Message = dashboard.Placeholder(page.Status, "")
	case dashboard.StatusReady:
		lookup = result.Data.Profile()
		uc.fillView(page, result.Data, identity, tf)
	}
	page.Profile = dashboard.ReconcileProfile(identity, lookup, uc.cfg.PlaceholderAvatar)

	return page, nil
}

// fetch joins or starts the shared fetch for email and waits at most
// RenderWait for it. The shared fetch outlives the request that started it.
func (uc *Usecase) fetch(ctx context.Context, email string) (dashboard.FetchResult, error) {
	ch := uc.group.DoChan(email, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.cfg.FetchTimeout)
		defer cancel()

		resp, err := uc.accounts.GetAccountData(fetchCtx, userusecase.GetAccountDataRequest{Email: email})
		if err != nil {
			var nf *apperrors.NotFoundError
			if errors.As(err, &nf) {
				return (*domain.User)(nil), nil
			}
			return nil, err
		}
		return resp.User, nil
	})

	timer := time.NewTimer(uc.cfg.RenderWait)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.Err != nil {
			return dashboard.FetchResult{Done: true, Err: res.Err}, nil
		}
		u, _ := res.Val.(*domain.User)
		return dashboard.FetchResult{Done: true, Data: u}, nil
	case <-timer.C:
		return dashboard.FetchResult{}, nil
	case <-ctx.Done():
		return dashboard.FetchResult{}, ctx.Err()
	}
}

func (uc *Usecase) fillView(page *Page, u *domain.User, identity dashboard.IdentityProfile, tf dashboard.Timeframe) {
	switch page.View {
	case dashboard.ViewMain:
		page.Overview = dashboard.NewOverview(u)
		chart := dashboard.NewChartWidget(uc.cfg.ChartSymbol, tf)
		page.Chart = &chart
	case dashboard.ViewSettings:
		page.Settings = &identity
	default:
		if panel, ok := dashboard.PanelFor(page.View); ok {
			page.Panel = &panel
		}
	}
}

func identityOf(s *session.Session) dashboard.IdentityProfile {
	return dashboard.IdentityProfile{
		FirstName: s.FirstName,
		FullName:  s.FullName,
		Email:     s.Email,
		ImageURL:  s.ImageURL,
	}
}
