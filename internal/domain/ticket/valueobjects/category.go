package valueobjects

import "fmt"

type Category string

const (
	CategoryAirConditioning Category = "air_conditioning"
	CategoryGenerator       Category = "generator"
	CategoryUPS             Category = "ups"
	CategoryIT              Category = "it"
	CategorySubstation      Category = "substation"
	CategoryNetwork         Category = "network"
	CategoryTransport       Category = "transport"
	CategoryOther           Category = "other"
)

var validCategories = map[Category]bool{
	CategoryAirConditioning: true,
	CategoryGenerator:       true,
	CategoryUPS:             true,
	CategoryIT:              true,
	CategorySubstation:      true,
	CategoryNetwork:         true,
	CategoryTransport:       true,
	CategoryOther:           true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
