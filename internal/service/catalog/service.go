package catalog

import (
	"context"
	"strings"
	"time"

	"agathiya-store/internal/domain"
	productrepo "agathiya-store/internal/repository/product"
	"github.com/google/uuid"
)

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) error
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id string) error
}

type describer interface {
	Describe(ctx context.Context, productName string) string
}

// Service manages the product catalog. Reads are public; mutations are
// restricted to the administrative actor by the HTTP layer.
type Service struct {
	repo      productRepo
	describer describer
}

func New(repo productrepo.Repository, describer describer) *Service {
	return &Service{repo: repo, describer: describer}
}

// Input carries the mutable product fields.
type Input struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Unit        domain.Unit     `json:"unit"`
	Category    domain.Category `json:"category"`
	ImageURL    string          `json:"imageUrl"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Validationf("product name is required")
	}
	if in.Price <= 0 {
		return domain.Validationf("price must be positive")
	}
	if !in.Unit.Valid() {
		return domain.Validationf("unknown unit %q", in.Unit)
	}
	if !in.Category.Valid() {
		return domain.Validationf("unknown category %q", in.Category)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Add creates a product with a fresh identifier.
func (s *Service) Add(ctx context.Context, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	product := domain.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Unit:        in.Unit,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces the mutable fields; identity and creation time stay.
func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *existing
	updated.Name = strings.TrimSpace(in.Name)
	updated.Description = in.Description
	updated.Price = in.Price
	updated.Unit = in.Unit
	updated.Category = in.Category
	if in.ImageURL != "" {
		updated.ImageURL = in.ImageURL
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Describe prefills a description for the named product. Best effort:
// the describer falls back to a static text on any failure.
func (s *Service) Describe(ctx context.Context, productName string) (string, error) {
	if strings.TrimSpace(productName) == "" {
		return "", domain.Validationf("product name is required")
	}
	return s.describer.Describe(ctx, productName), nil
}
