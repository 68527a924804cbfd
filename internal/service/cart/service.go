package cart

import (
	"context"
	"math"
	"strings"
	"time"

	"agathiya-store/internal/domain"
	cartrepo "agathiya-store/internal/repository/cartcache"
	orderrepo "agathiya-store/internal/repository/order"
	productrepo "agathiya-store/internal/repository/product"
	"github.com/google/uuid"
)

// MinOrderTotal is the minimum-order-value policy: checkout is blocked
// below this amount.
const MinOrderTotal = 100

const gramsPerKilogram = 1000

type cartRepo interface {
	Get(ctx context.Context, owner string) (*domain.Cart, error)
	Save(ctx context.Context, owner string, cart domain.Cart) error
	Clear(ctx context.Context, owner string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type orderRepo interface {
	Insert(ctx context.Context, o domain.Order) error
}

// Service owns the session cart: unit rules, line merging, totals and
// checkout into a pending order.
type Service struct {
	carts    cartRepo
	products productRepo
	orders   orderRepo
}

func New(carts cartrepo.Repository, products productrepo.Repository, orders orderrepo.Repository) *Service {
	return &Service{carts: carts, products: products, orders: orders}
}

func (s *Service) Get(ctx context.Context, owner string) (*domain.Cart, error) {
	return s.carts.Get(ctx, owner)
}

// AddLine validates quantity/unit against the product's base unit and
// merges into an existing (product, unit) line or appends a new one.
func (s *Service) AddLine(ctx context.Context, owner, productID string, quantity float64, unit domain.Unit) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.Validationf("quantity must be positive")
	}
	if !unit.Valid() {
		return nil, domain.Validationf("unknown unit %q", unit)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Gram is the only alternate unit, and only for kilogram products.
	if unit != product.Unit && !(unit == domain.UnitGram && product.Unit == domain.UnitKilogram) {
		return nil, domain.Validationf("%s is sold per %s", product.Name, product.Unit)
	}
	if unit == domain.UnitGram && quantity < gramsPerKilogram {
		return nil, domain.Validationf("minimum quantity is 1000 gm (1 kg)")
	}
	if unit == domain.UnitKilogram && quantity < 1 {
		return nil, domain.Validationf("minimum quantity is 1 kg")
	}

	cart, err := s.carts.Get(ctx, owner)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == product.ID && cart.Lines[i].Unit == unit {
			cart.Lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			BaseUnit:    product.Unit,
			Quantity:    quantity,
			Unit:        unit,
		})
	}

	if err := s.carts.Save(ctx, owner, *cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveLine drops the line at index.
func (s *Service) RemoveLine(ctx context.Context, owner string, index int) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cart.Lines) {
		return nil, domain.Validationf("no cart line at index %d", index)
	}
	cart.Lines = append(cart.Lines[:index], cart.Lines[index+1:]...)
	if err := s.carts.Save(ctx, owner, *cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UnitPrice is the line's price normalized to its chosen unit: a gram
// line costs 1/1000 of the kilogram base price.
func UnitPrice(line domain.CartLine) float64 {
	if line.Unit == domain.UnitGram && line.BaseUnit == domain.UnitKilogram {
		return line.Price / gramsPerKilogram
	}
	return line.Price
}

// Total sums unit price times quantity over all lines. Rounding happens
// only when an order is materialized.
func Total(cart domain.Cart) float64 {
	var sum float64
	for _, line := range cart.Lines {
		sum += UnitPrice(line) * line.Quantity
	}
	return sum
}

// LineTotal rounds a single line to the nearest rupee.
func LineTotal(line domain.CartLine) int64 {
	return int64(math.Round(UnitPrice(line) * line.Quantity))
}

// Checkout turns a valid cart into a Pending order, persists it and
// clears the cart. The purchaser's name, phone and address are copied
// into the order.
func (s *Service) Checkout(ctx context.Context, owner string, purchaser domain.Session) (*domain.Order, error) {
	cart, err := s.carts.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, domain.Validationf("cart is empty")
	}
	total := Total(*cart)
	if total < MinOrderTotal {
		short := int64(math.Round(MinOrderTotal - total))
		return nil, domain.Validationf("minimum order value is ₹%d, add ₹%d more", MinOrderTotal, short)
	}

	items := make([]domain.OrderItem, 0, len(cart.Lines))
	var amount int64
	for _, line := range cart.Lines {
		lineTotal := LineTotal(line)
		amount += lineTotal
		items = append(items, domain.OrderItem{
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			Price:        line.Price,
			Quantity:     line.Quantity,
			QuantityUnit: line.Unit,
			Total:        lineTotal,
		})
	}

	// The order amount is the sum of rounded line totals so the stored
	// invariant holds exactly.
	order := domain.Order{
		ID:          newOrderID(),
		UserName:    purchaser.Name,
		UserPhone:   purchaser.Phone,
		UserAddress: purchaser.Address,
		Items:       items,
		TotalAmount: amount,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	if err := s.carts.Clear(ctx, owner); err != nil {
		return nil, err
	}
	return &order, nil
}

func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "AG-" + suffix[:6]
}
