package catalog

import (
	"context"
	"errors"
	"time"

	"bt2horizon/internal/domain"
	"bt2horizon/internal/pkg/cache"
	"bt2horizon/internal/repository"

	"gorm.io/gorm"
)

const packageListCacheKey = "catalog:packages"

// Service owns the marketing-content business rules: image
// normalization on packages, activity windows on deals, one deal per
// calendar day.
type Service struct {
	repo  CatalogRepositoryInterface
	cache *cache.Cache
}

func NewService(repo CatalogRepositoryInterface, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// Posts

func (s *Service) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.repo.ListPosts(ctx)
}

func (s *Service) CreatePost(ctx context.Context, req PostRequest) (*domain.Post, error) {
	post := &domain.Post{Title: req.Title, Slug: req.Slug, Content: req.Content}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) UpdatePost(ctx context.Context, id int64, req PostRequest) (*domain.Post, error) {
	post := &domain.Post{ID: id, Title: req.Title, Slug: req.Slug, Content: req.Content}
	if err := s.repo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) DeletePost(ctx context.Context, id int64) error {
	return s.repo.DeletePost(ctx, id)
}

// Packages

func (s *Service) ListPackages(ctx context.Context) ([]domain.Package, error) {
	var cached []domain.Package
	if s.cache.Get(ctx, packageListCacheKey, &cached) {
		return cached, nil
	}

	pkgs, err := s.repo.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, packageListCacheKey, pkgs, 5*time.Minute)
	return pkgs, nil
}

// normalizeImages applies the package image invariant: the images
// array is authoritative, a legacy img value is folded in when the
// array is empty, and img always ends up mirroring images[0].
func normalizeImages(img *string, images []string) (*string, []string, error) {
	out := make([]string, 0, len(images))
	for _, u := range images {
		if u != "" {
			out = append(out, u)
		}
	}
	if len(out) == 0 && img != nil && *img != "" {
		out = append(out, *img)
	}
	if len(out) == 0 {
		return nil, nil, ErrImageRequired
	}
	first := out[0]
	return &first, out, nil
}

func (s *Service) CreatePackage(ctx context.Context, req PackageRequest) (*domain.Package, error) {
	img, images, err := normalizeImages(req.Img, req.Images)
	if err != nil {
		return nil, err
	}

	pkg := &domain.Package{
		Code:        req.Code,
		Title:       req.Title,
		Nights:      req.Nights,
		Price:       req.Price,
		TripDetails: req.TripDetails,
		Img:         img,
		Images:      images,
	}
	if err := s.repo.CreatePackage(ctx, pkg); err != nil {
		return nil, err
	}
	s.cache.Del(ctx, packageListCacheKey)
	return pkg, nil
}

func (s *Service) UpdatePackage(ctx context.Context, id int64, req PackageRequest) (*domain.Package, error) {
	if _, err := s.repo.GetPackage(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	img, images, err := normalizeImages(req.Img, req.Images)
	if err != nil {
		return nil, err
	}

	pkg := &domain.Package{
		ID:          id,
		Code:        req.Code,
		Title:       req.Title,
		Nights:      req.Nights,
		Price:       req.Price,
		TripDetails: req.TripDetails,
		Img:         img,
		Images:      images,
	}
	if err := s.repo.UpdatePackage(ctx, pkg); err != nil {
		return nil, err
	}
	s.cache.Del(ctx, packageListCacheKey)
	return pkg, nil
}

func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	if err := s.repo.DeletePackage(ctx, id); err != nil {
		return err
	}
	s.cache.Del(ctx, packageListCacheKey)
	return nil
}

// Crazy deals

func (s *Service) ListActiveDeals(ctx context.Context) ([]domain.CrazyDeal, error) {
	return s.repo.ListActiveDeals(ctx, time.Now())
}

func (s *Service) ListAllDeals(ctx context.Context) ([]domain.CrazyDeal, error) {
	return s.repo.ListAllDeals(ctx)
}

func (s *Service) CreateDeal(ctx context.Context, req DealRequest) (*domain.CrazyDeal, error) {
	deal := &domain.CrazyDeal{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		DiscountPercent: req.DiscountPercent,
		EndDate:         req.EndDate,
		Active:          req.Active == nil || *req.Active,
	}
	if err := s.repo.CreateDeal(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *Service) UpdateDeal(ctx context.Context, id int64, req DealRequest) (*domain.CrazyDeal, error) {
	deal := &domain.CrazyDeal{
		ID:              id,
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		DiscountPercent: req.DiscountPercent,
		EndDate:         req.EndDate,
		Active:          req.Active == nil || *req.Active,
	}
	if err := s.repo.UpdateDeal(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *Service) DeleteDeal(ctx context.Context, id int64) error {
	return s.repo.DeleteDeal(ctx, id)
}

// Affordable destinations

func (s *Service) ListActiveDestinations(ctx context.Context) ([]domain.AffordableDestination, error) {
	return s.repo.ListActiveDestinations(ctx)
}

func (s *Service) ListAllDestinations(ctx context.Context) ([]domain.AffordableDestination, error) {
	return s.repo.ListAllDestinations(ctx)
}

func (s *Service) CreateDestination(ctx context.Context, req DestinationRequest) (*domain.AffordableDestination, error) {
	dest := &domain.AffordableDestination{
		Country:      req.Country,
		City:         req.City,
		Price:        req.Price,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active == nil || *req.Active,
	}
	if err := s.repo.CreateDestination(ctx, dest); err != nil {
		return nil, err
	}
	return dest, nil
}

func (s *Service) UpdateDestination(ctx context.Context, id int64, req DestinationRequest) (*domain.AffordableDestination, error) {
	dest := &domain.AffordableDestination{
		ID:           id,
		Country:      req.Country,
		City:         req.City,
		Price:        req.Price,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active == nil || *req.Active,
	}
	if err := s.repo.UpdateDestination(ctx, dest); err != nil {
		return nil, err
	}
	return dest, nil
}

func (s *Service) DeleteDestination(ctx context.Context, id int64) error {
	return s.repo.DeleteDestination(ctx, id)
}

// Calendar deals

func (s *Service) ListCalendarDeals(ctx context.Context, startDate, endDate string, activeOnly bool) ([]domain.CalendarDeal, error) {
	return s.repo.ListCalendarDeals(ctx, repository.CalendarDealFilter{
		StartDate:  startDate,
		EndDate:    endDate,
		ActiveOnly: activeOnly,
	})
}

// UpsertCalendarDeal keeps one deal per day: an existing row for the
// date is overwritten, otherwise a new one is created.
func (s *Service) UpsertCalendarDeal(ctx context.Context, req CalendarDealRequest) (*domain.CalendarDeal, error) {
	if _, err := time.Parse("2006-01-02", req.DealDate); err != nil {
		return nil, ErrInvalidDate
	}
	dealType := domain.CalendarDealType(req.DealType)
	if !dealType.Valid() {
		return nil, ErrInvalidDealType
	}

	deal := &domain.CalendarDeal{
		DealDate:        req.DealDate,
		DealType:        dealType,
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		Active:          req.Active == nil || *req.Active,
	}

	existing, err := s.repo.GetCalendarDealByDate(ctx, req.DealDate)
	switch {
	case err == nil:
		deal.ID = existing.ID
		deal.CreatedAt = existing.CreatedAt
		if err := s.repo.UpdateCalendarDeal(ctx, deal); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.repo.CreateCalendarDeal(ctx, deal); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return deal, nil
}

func (s *Service) DeleteCalendarDeal(ctx context.Context, id int64) error {
	return s.repo.DeleteCalendarDeal(ctx, id)
}
