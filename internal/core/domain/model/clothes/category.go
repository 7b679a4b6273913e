package clothes

import (
	"fmt"
	"strings"

	"rental/internal/pkg/errs"
)

// Category classifies a clothing item. The declaration order is the fixed
// category rank used when a single item must be chosen out of several, e.g.
// picking which donor story to feature on a rental.
type Category int

const (
	Jacket Category = iota
	Pants
	Skirt
	Onepiece
	Coat
	Waistcoat
	Shirt
	Blouse
	Tie
	Belt
	Shoes
	Misc
)

func getCategoryCodes() map[Category]string {
	return map[Category]string{
		Jacket:    "JK",
		Pants:     "PT",
		Skirt:     "SK",
		Onepiece:  "OP",
		Coat:      "CT",
		Waistcoat: "WC",
		Shirt:     "SH",
		Blouse:    "BL",
		Tie:       "TI",
		Belt:      "BT",
		Shoes:     "SS",
		Misc:      "ET",
	}
}

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Jacket:    "Jacket",
		Pants:     "Pants",
		Skirt:     "Skirt",
		Onepiece:  "Onepiece",
		Coat:      "Coat",
		Waistcoat: "Waistcoat",
		Shirt:     "Shirt",
		Blouse:    "Blouse",
		Tie:       "Tie",
		Belt:      "Belt",
		Shoes:     "Shoes",
		Misc:      "Misc",
	}
}

// String returns the category name.
func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

// CodePrefix returns the two-letter prefix clothing codes of this category
// start with ("SS123" is a pair of shoes).
func (c Category) CodePrefix() string {
	return getCategoryCodes()[c]
}

// Rank returns the fixed ordering position of the category. Lower ranks win
// ties: Jacket < Pants < … < Misc.
func (c Category) Rank() int {
	return int(c)
}

// Validate checks that the value is one of the defined categories.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// CategoryFromCode derives the category from a clothing code prefix.
// Unknown prefixes map to Misc.
func CategoryFromCode(code string) Category {
	for c, prefix := range getCategoryCodes() {
		if c != Misc && strings.HasPrefix(code, prefix) {
			return c
		}
	}
	return Misc
}
