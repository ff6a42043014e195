// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the commerce domain.
package entity

// Category classifies a product within the fixed catalog taxonomy.
type Category string

const (
	// CategoryWires covers cabling and wiring products.
	CategoryWires Category = "wires"
	// CategoryLighting covers lamps, panels and fixtures.
	CategoryLighting Category = "lighting"
	// CategorySwitches covers switches, breakers and relays.
	CategorySwitches Category = "switches"
	// CategorySafety covers protective gear and safety equipment.
	CategorySafety Category = "safety"
	// CategoryTools covers hand and power tools.
	CategoryTools Category = "tools"
)

// Categories lists every valid catalog category in display order.
func Categories() []Category {
	return []Category{CategoryWires, CategoryLighting, CategorySwitches, CategorySafety, CategoryTools}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWires, CategoryLighting, CategorySwitches, CategorySafety, CategoryTools:
		return true
	default:
		return false
	}
}
