// Package clothes contains the clothing item entity and its category
// classification. Items are owned by the inventory but mirror the status of
// the order they are packed into while attached.
package clothes

import (
	"errors"
	"fmt"

	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// ErrClothesIsNotConstructed is returned when a Clothes instance was not
// created through NewClothes or RestoreClothes.
var ErrClothesIsNotConstructed = errors.New("Clothes must be created via NewClothes constructor")

// Clothes is a single inventory item identified by its human-assigned code.
// Length carries the size dimension relevant to the category (shoe length in
// millimeters for shoes). DonorStory holds the donation note shown to renters
// when the item was donated with one.
type Clothes struct {
	id         int64
	code       string
	category   Category
	price      int
	length     int
	donorName  string
	donorStory string
	status     order.Status

	guard guard.ConstructorGuard
}

// NewClothes registers a new inventory item.
func NewClothes(code string, category Category, price, length int) (*Clothes, error) {
	c := &Clothes{
		status: order.None,
		guard:  guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		c.setCode(code),
		c.setCategory(category),
		c.setPrice(price),
	); err != nil {
		return nil, err
	}
	c.length = length
	return c, nil
}

// RestoreClothes reconstructs an item from persistence.
func RestoreClothes(
	id int64, code string, category Category,
	price, length int, donorName, donorStory string, status order.Status,
) (*Clothes, error) {
	c, err := NewClothes(code, category, price, length)
	if err != nil {
		return nil, err
	}
	c.id = id
	c.donorName = donorName
	c.donorStory = donorStory
	c.status = status
	return c, nil
}

// Validate ensures the item was created through a constructor.
func (c *Clothes) Validate() error {
	if c == nil {
		return ErrClothesIsNotConstructed
	}
	return c.guard.Validate(ErrClothesIsNotConstructed)
}

// ID returns the item identifier (zero before first save).
func (c *Clothes) ID() int64 { return c.id }

// SetID is called by persistence after the first insert.
func (c *Clothes) SetID(id int64) { c.id = id }

// Code returns the human-assigned item code.
func (c *Clothes) Code() string { return c.code }

// Category returns the item category.
func (c *Clothes) Category() Category { return c.category }

// Price returns the catalog rental price.
func (c *Clothes) Price() int { return c.price }

// Length returns the size dimension of the item (shoe length for shoes).
func (c *Clothes) Length() int { return c.length }

// DonorName returns the donor's name, or empty when not donated.
func (c *Clothes) DonorName() string { return c.donorName }

// DonorStory returns the donation note, or empty.
func (c *Clothes) DonorStory() string { return c.donorStory }

// Status returns the item status, mirroring the holding order.
func (c *Clothes) Status() order.Status { return c.status }

// SetDonation attaches the donor's name and story to the item.
func (c *Clothes) SetDonation(name, story string) {
	c.donorName = name
	c.donorStory = story
}

// MarkStatus mirrors the holding order's status onto the item. CancelBox is
// accepted here even though it is not a valid order status.
func (c *Clothes) MarkStatus(s order.Status) {
	c.status = s
}

func (c *Clothes) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("clothes code")
	}
	c.code = code
	return nil
}

func (c *Clothes) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}

func (c *Clothes) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("clothes price",
			fmt.Errorf("%d is negative", price))
	}
	c.price = price
	return nil
}
