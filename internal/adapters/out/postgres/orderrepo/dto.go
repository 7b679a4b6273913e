// Package orderrepo persists the order aggregate. An order row owns its line
// item rows; the mapping functions convert between the aggregate and the two
// tables.
package orderrepo

import (
	"time"

	"rental/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	UserID   int64  `gorm:"index"`
	CouponID *int64 `gorm:"index"`
	ParentID *int64 `gorm:"index"`
	Status   int    `gorm:"index"`

	RentalDate     *time.Time
	TargetDate     *time.Time
	UserTargetDate *time.Time
	ReturnDate     *time.Time
	AdditionalDay  int

	PricePayWith        string
	LateFeePayWith      string
	CompensationPayWith string

	Agent   bool
	Online  bool
	Ignore  bool
	Bestfit bool

	Purpose      string
	Memo         string
	SaleDiscount int

	BodyHeight *int
	BodyWeight *int
	BodyChest  *int
	BodyWaist  *int
	BodyFoot   *int

	LineItems []LineItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one order line item row.
type LineItemDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	OrderID     int64  `gorm:"index"`
	ClothesID   *int64 `gorm:"index"`
	Name        string
	Price       int
	FinalPrice  int
	Stage       int
	Status      int
	PayWith     string
	Description string
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                  aggregate.ID(),
		UserID:              aggregate.UserID(),
		CouponID:            aggregate.CouponID(),
		ParentID:            aggregate.ParentID(),
		Status:              int(aggregate.Status()),
		RentalDate:          aggregate.RentalDate(),
		TargetDate:          aggregate.TargetDate(),
		UserTargetDate:      aggregate.UserTargetDate(),
		ReturnDate:          aggregate.ReturnDate(),
		AdditionalDay:       aggregate.AdditionalDay(),
		PricePayWith:        aggregate.PricePayWith(),
		LateFeePayWith:      aggregate.LateFeePayWith(),
		CompensationPayWith: aggregate.CompensationPayWith(),
		Agent:               aggregate.Agent(),
		Online:              aggregate.Online(),
		Ignore:              aggregate.Ignore(),
		Bestfit:             aggregate.Bestfit(),
		Purpose:             aggregate.Purpose(),
		Memo:                aggregate.Memo(),
		SaleDiscount:        aggregate.SaleDiscount(),
	}

	if body := aggregate.Body(); body != nil {
		height, weight, chest, waist, foot := body.Height, body.Weight, body.Chest, body.Waist, body.Foot
		dto.BodyHeight = &height
		dto.BodyWeight = &weight
		dto.BodyChest = &chest
		dto.BodyWaist = &waist
		dto.BodyFoot = &foot
	}

	dto.LineItems = make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, li := range aggregate.LineItems() {
		dto.LineItems = append(dto.LineItems, lineFromDomain(aggregate.ID(), li))
	}

	return dto
}

func lineFromDomain(orderID int64, li *order.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:          li.ID(),
		OrderID:     orderID,
		ClothesID:   li.ClothesID(),
		Name:        li.Name(),
		Price:       li.Price(),
		FinalPrice:  li.FinalPrice(),
		Stage:       int(li.Stage()),
		Status:      int(li.Status()),
		PayWith:     li.PayWith(),
		Description: li.Desc(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var body *order.BodySnapshot
	if dto.BodyHeight != nil || dto.BodyWeight != nil || dto.BodyChest != nil ||
		dto.BodyWaist != nil || dto.BodyFoot != nil {
		body = &order.BodySnapshot{
			Height: derefOrZero(dto.BodyHeight),
			Weight: derefOrZero(dto.BodyWeight),
			Chest:  derefOrZero(dto.BodyChest),
			Waist:  derefOrZero(dto.BodyWaist),
			Foot:   derefOrZero(dto.BodyFoot),
		}
	}

	lines := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		lines = append(lines, order.RestoreLineItem(
			li.ID, li.ClothesID, li.Name,
			li.Price, li.FinalPrice, order.Stage(li.Stage), order.Status(li.Status),
			li.PayWith, li.Description,
		))
	}

	return order.RestoreOrder(
		dto.ID, dto.UserID, dto.CouponID, dto.ParentID, order.Status(dto.Status),
		dto.RentalDate, dto.TargetDate, dto.UserTargetDate, dto.ReturnDate,
		dto.AdditionalDay, dto.PricePayWith, dto.LateFeePayWith, dto.CompensationPayWith,
		dto.Agent, dto.Online, dto.Ignore, dto.Bestfit, dto.Purpose, dto.Memo,
		dto.SaleDiscount, body, lines,
	)
}

func derefOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
