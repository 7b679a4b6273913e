package commands

import (
	"errors"

	"rental/internal/pkg/guard"
)

var (
	ErrPackOrderCommandIsNotConstructed = errors.New(
		"PackOrderCommand must be created via NewPackOrderCommand constructor",
	)
	ErrClothesCodesAreRequired = errors.New("at least one clothes code is required")
)

// PackOrderCommand represents staff fixing the box contents after the
// fitting: the selected item codes are priced into line items and the order
// moves from Box to Boxed.
type PackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int64
	clothesCodes []string

	guard guard.ConstructorGuard
}

// NewPackOrderCommand creates a command to pack the listed item codes.
func NewPackOrderCommand(orderID int64, clothesCodes []string) (PackOrderCommand, error) {
	cmd := PackOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClothesCodes(clothesCodes),
	); err != nil {
		return PackOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPackOrderCommandIsNotConstructed)
}

// OrderID returns the order being packed.
func (c PackOrderCommand) OrderID() int64 { return c.orderID }

// ClothesCodes returns the selected item codes.
func (c PackOrderCommand) ClothesCodes() []string { return c.clothesCodes }

func (c *PackOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *PackOrderCommand) setClothesCodes(codes []string) error {
	if len(codes) == 0 {
		return ErrClothesCodesAreRequired
	}
	for _, code := range codes {
		if code == "" {
			return ErrClothesCodesAreRequired
		}
	}

	c.clothesCodes = codes
	return nil
}
