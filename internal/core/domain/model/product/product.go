package product

import (
	"errors"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrUnitOfMeasureIsRequired is returned when creating a product without a unit of measure.
	ErrUnitOfMeasureIsRequired = errs.NewValueIsRequiredError("unit of measure")
	// ErrProductIsNotConstructed is returned when using a Product that bypassed its constructors.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product is a catalog item. Its unit price is a snapshot source for order
// lines: once a line is created the line keeps its own copy of the price, so
// later price changes never rewrite history.
type Product struct {
	id            kernel.UUID
	name          string
	description   string
	unitPrice     kernel.Money
	unitOfMeasure string
	active        bool
	guard         guard.ConstructorGuard
}

// NewProduct creates an active product after validating all fields.
func NewProduct(id kernel.UUID, name, description string, unitPrice kernel.Money, unitOfMeasure string) (*Product, error) {
	p := &Product{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitOfMeasure(unitOfMeasure),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.unitPrice = unitPrice
	return p, nil
}

// RestoreProduct rebuilds a product from persistence, including its active flag.
func RestoreProduct(id kernel.UUID, name, description string, unitPrice kernel.Money, unitOfMeasure string, active bool) (*Product, error) {
	p, err := NewProduct(id, name, description, unitPrice, unitOfMeasure)
	if err != nil {
		return nil, err
	}
	p.active = active
	return p, nil
}

// Validate ensures the product came from a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional product description.
func (p *Product) Description() string {
	return p.description
}

// UnitPrice returns the current list price per unit.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// UnitOfMeasure returns the selling unit, e.g. "paquete" or "bidon".
func (p *Product) UnitOfMeasure() string {
	return p.unitOfMeasure
}

// IsActive reports whether the product can be sold.
func (p *Product) IsActive() bool {
	return p.active
}

// Deactivate archives the product. Existing order lines are unaffected.
func (p *Product) Deactivate() {
	p.active = false
}

// Activate returns an archived product to the sellable catalog.
func (p *Product) Activate() {
	p.active = true
}

// ChangeUnitPrice updates the list price used for future order lines.
func (p *Product) ChangeUnitPrice(price kernel.Money) {
	p.unitPrice = price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setUnitOfMeasure(unit string) error {
	if unit == "" {
		return ErrUnitOfMeasureIsRequired
	}
	p.unitOfMeasure = unit
	return nil
}
