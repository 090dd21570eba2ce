package views

// DropDown groups entries under one navigation item. It is not routed; its
// routable children are.
type DropDown struct {
	title    string
	icon     string
	children []Entry
}

// NewDropDown builds a dropdown. Nested dropdowns are rejected when the
// dropdown is added to an admin panel.
func NewDropDown(title, icon string, children ...Entry) *DropDown {
	return &DropDown{
		title:    title,
		icon:     icon,
		children: append([]Entry(nil), children...),
	}
}

// Kind implements Entry.
func (*DropDown) Kind() Kind { return KindDropDown }

func (*DropDown) sealed() {}

func (d *DropDown) Title() string { return d.title }
func (d *DropDown) Icon() string  { return d.icon }

// Views returns the children in declaration order. The slice is a copy.
func (d *DropDown) Views() []Entry {
	return append([]Entry(nil), d.children...)
}
