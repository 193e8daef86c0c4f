package repository

import (
	"context"
	"time"

	"bt2horizon/internal/domain"

	"gorm.io/gorm"
)

// CatalogRepository covers the marketing-site content tables: posts,
// packages, crazy deals, affordable destinations and calendar deals.
// List filters run in the query, not in the handler.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Posts

func (r *CatalogRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.db.WithContext(ctx).Order("id DESC").Find(&posts).Error
	return posts, err
}

func (r *CatalogRepository) CreatePost(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *CatalogRepository) UpdatePost(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Model(&domain.Post{}).Where("id = ?", p.ID).
		Updates(map[string]any{"title": p.Title, "slug": p.Slug, "content": p.Content}).Error
}

func (r *CatalogRepository) DeletePost(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Post{}, id).Error
}

// Packages

func (r *CatalogRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	var pkgs []domain.Package
	err := r.db.WithContext(ctx).Order("id").Find(&pkgs).Error
	return pkgs, err
}

func (r *CatalogRepository) GetPackage(ctx context.Context, id int64) (*domain.Package, error) {
	var p domain.Package
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) CreatePackage(ctx context.Context, p *domain.Package) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *CatalogRepository) UpdatePackage(ctx context.Context, p *domain.Package) error {
	return r.db.WithContext(ctx).Model(&domain.Package{}).Where("id = ?", p.ID).
		Updates(map[string]any{
			"code":         p.Code,
			"title":        p.Title,
			"nights":       p.Nights,
			"price":        p.Price,
			"trip_details": p.TripDetails,
			"img":          p.Img,
			"images":       p.Images,
		}).Error
}

func (r *CatalogRepository) DeletePackage(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Package{}, id).Error
}

// Crazy deals

func (r *CatalogRepository) ListActiveDeals(ctx context.Context, now time.Time) ([]domain.CrazyDeal, error) {
	var deals []domain.CrazyDeal
	err := r.db.WithContext(ctx).
		Where("active = ? AND end_date > ?", true, now).
		Order("end_date").
		Find(&deals).Error
	return deals, err
}

func (r *CatalogRepository) ListAllDeals(ctx context.Context) ([]domain.CrazyDeal, error) {
	var deals []domain.CrazyDeal
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&deals).Error
	return deals, err
}

func (r *CatalogRepository) CreateDeal(ctx context.Context, d *domain.CrazyDeal) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *CatalogRepository) UpdateDeal(ctx context.Context, d *domain.CrazyDeal) error {
	return r.db.WithContext(ctx).Model(&domain.CrazyDeal{}).Where("id = ?", d.ID).
		Updates(map[string]any{
			"title":            d.Title,
			"subtitle":         d.Subtitle,
			"discount_percent": d.DiscountPercent,
			"end_date":         d.EndDate,
			"active":           d.Active,
		}).Error
}

func (r *CatalogRepository) DeleteDeal(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.CrazyDeal{}, id).Error
}

// Affordable destinations

func (r *CatalogRepository) ListActiveDestinations(ctx context.Context) ([]domain.AffordableDestination, error) {
	var rows []domain.AffordableDestination
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("display_order").
		Find(&rows).Error
	return rows, err
}

func (r *CatalogRepository) ListAllDestinations(ctx context.Context) ([]domain.AffordableDestination, error) {
	var rows []domain.AffordableDestination
	err := r.db.WithContext(ctx).Order("display_order").Find(&rows).Error
	return rows, err
}

func (r *CatalogRepository) CreateDestination(ctx context.Context, d *domain.AffordableDestination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *CatalogRepository) UpdateDestination(ctx context.Context, d *domain.AffordableDestination) error {
	return r.db.WithContext(ctx).Model(&domain.AffordableDestination{}).Where("id = ?", d.ID).
		Updates(map[string]any{
			"country":       d.Country,
			"city":          d.City,
			"price":         d.Price,
			"display_order": d.DisplayOrder,
			"active":        d.Active,
		}).Error
}

func (r *CatalogRepository) DeleteDestination(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.AffordableDestination{}, id).Error
}

// Calendar deals

// CalendarDealFilter narrows the public calendar view. Zero values
// mean "no constraint".
type CalendarDealFilter struct {
	StartDate  string
	EndDate    string
	ActiveOnly bool
}

func (r *CatalogRepository) ListCalendarDeals(ctx context.Context, f CalendarDealFilter) ([]domain.CalendarDeal, error) {
	q := r.db.WithContext(ctx).Model(&domain.CalendarDeal{})
	if f.StartDate != "" {
		q = q.Where("deal_date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where("deal_date <= ?", f.EndDate)
	}
	if f.ActiveOnly {
		q = q.Where("active = ?", true)
	}

	var deals []domain.CalendarDeal
	err := q.Order("deal_date").Find(&deals).Error
	return deals, err
}

func (r *CatalogRepository) GetCalendarDealByDate(ctx context.Context, date string) (*domain.CalendarDeal, error) {
	var d domain.CalendarDeal
	err := r.db.WithContext(ctx).Where("deal_date = ?", date).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CatalogRepository) CreateCalendarDeal(ctx context.Context, d *domain.CalendarDeal) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *CatalogRepository) UpdateCalendarDeal(ctx context.Context, d *domain.CalendarDeal) error {
	return r.db.WithContext(ctx).Model(&domain.CalendarDeal{}).Where("id = ?", d.ID).
		Updates(map[string]any{
			"deal_type":        d.DealType,
			"title":            d.Title,
			"description":      d.Description,
			"discount_percent": d.DiscountPercent,
			"active":           d.Active,
		}).Error
}

func (r *CatalogRepository) DeleteCalendarDeal(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.CalendarDeal{}, id).Error
}
