package cl

// Category is a display-grouping label attached to each option. It has no
// effect on parsing, only on how -help lays options out.
type Category struct {
	name        string
	description string
}

// NewCategory creates a new option category. Categories are cheap value
// handles and names are not checked for uniqueness; -help groups options by
// category name, so two categories with the same name share one display
// group.
func NewCategory(name, description string) *Category {
	return &Category{name: name, description: description}
}

func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }

var generalCategory = ManagedStaticOf(func() *Category {
	return NewCategory("General options", "")
})

// GeneralCategory is the default category every option carries absent an
// explicit Cat(...) modifier.
func GeneralCategory() *Category { return generalCategory.Get() }
