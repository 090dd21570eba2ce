package views

// LinkView is a navigation entry pointing at an arbitrary URL.
type LinkView struct {
	title string
	url   string
	icon  string
	blank bool
}

// LinkOption customises a LinkView.
type LinkOption func(*LinkView)

// LinkIcon sets the link icon.
func LinkIcon(icon string) LinkOption { return func(l *LinkView) { l.icon = icon } }

// OpenInNewTab makes the link open in a new browsing context.
func OpenInNewTab() LinkOption { return func(l *LinkView) { l.blank = true } }

// NewLink builds a link entry.
func NewLink(title, url string, opts ...LinkOption) *LinkView {
	link := &LinkView{title: title, url: url}
	for _, opt := range opts {
		if opt != nil {
			opt(link)
		}
	}
	return link
}

// Kind implements Entry.
func (*LinkView) Kind() Kind { return KindLink }

func (*LinkView) sealed() {}

func (l *LinkView) Title() string { return l.title }
func (l *LinkView) URL() string   { return l.url }
func (l *LinkView) Icon() string  { return l.icon }
func (l *LinkView) Blank() bool   { return l.blank }
