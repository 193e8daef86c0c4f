package catalog

import (
	"context"
	"time"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/repository"
)

// CatalogRepositoryInterface is everything the service needs from the
// content tables.
type CatalogRepositoryInterface interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	CreatePost(ctx context.Context, p *domain.Post) error
	UpdatePost(ctx context.Context, p *domain.Post) error
	DeletePost(ctx context.Context, id int64) error

	ListPackages(ctx context.Context) ([]domain.Package, error)
	GetPackage(ctx context.Context, id int64) (*domain.Package, error)
	CreatePackage(ctx context.Context, p *domain.Package) error
	UpdatePackage(ctx context.Context, p *domain.Package) error
	DeletePackage(ctx context.Context, id int64) error

	ListActiveDeals(ctx context.Context, now time.Time) ([]domain.CrazyDeal, error)
	ListAllDeals(ctx context.Context) ([]domain.CrazyDeal, error)
	CreateDeal(ctx context.Context, d *domain.CrazyDeal) error
	UpdateDeal(ctx context.Context, d *domain.CrazyDeal) error
	DeleteDeal(ctx context.Context, id int64) error

	ListActiveDestinations(ctx context.Context) ([]domain.AffordableDestination, error)
	ListAllDestinations(ctx context.Context) ([]domain.AffordableDestination, error)
	CreateDestination(ctx context.Context, d *domain.AffordableDestination) error
	UpdateDestination(ctx context.Context, d *domain.AffordableDestination) error
	DeleteDestination(ctx context.Context, id int64) error

	ListCalendarDeals(ctx context.Context, f repository.CalendarDealFilter) ([]domain.CalendarDeal, error)
	GetCalendarDealByDate(ctx context.Context, date string) (*domain.CalendarDeal, error)
	CreateCalendarDeal(ctx context.Context, d *domain.CalendarDeal) error
	UpdateCalendarDeal(ctx context.Context, d *domain.CalendarDeal) error
	DeleteCalendarDeal(ctx context.Context, id int64) error
}
