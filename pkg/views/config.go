package views

import "strings"

// Config identifies a routable view. Name and Path must be unique within one
// admin panel; Name is also the key for reverse URL lookups.
type Config struct {
	Name             string `json:"name"`
	Title            string `json:"title,omitempty"`
	Path             string `json:"path"`
	Icon             string `json:"icon,omitempty"`
	SubmitButtonText string `json:"submit_button_text,omitempty"`
}

// ResolvedPath returns the route path. An empty path is the admin root.
func (c Config) ResolvedPath() string {
	path := strings.TrimSpace(c.Path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// DisplayTitle is the title, falling back to the name.
func (c Config) DisplayTitle() string {
	if title := strings.TrimSpace(c.Title); title != "" {
		return title
	}
	return c.Name
}

func (c Config) normalized() Config {
	c.Name = strings.TrimSpace(c.Name)
	c.Path = c.ResolvedPath()
	return c
}
