package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category groups navigation entries in the palette
type Category int

const (
	CategorySuggestions Category = iota
	CategorySettings
)

// Categories lists every category in display order
var Categories = []Category{CategorySuggestions, CategorySettings}

// String returns the wire name of the category
func (c Category) String() string {
	switch c {
	case CategorySuggestions:
		return "suggestions"
	case CategorySettings:
		return "settings"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Title returns the heading shown above the category in the palette
func (c Category) Title() string {
	switch c {
	case CategorySuggestions:
		return "Suggestions"
	case CategorySettings:
		return "Settings"
	default:
		return ""
	}
}

// ParseCategory converts a wire name into a Category
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "suggestions":
		return CategorySuggestions, nil
	case "settings":
		return CategorySettings, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ActionKind names a built-in palette action
type ActionKind string

const (
	ActionToggleTheme  ActionKind = "toggle-theme"
	ActionOpenExternal ActionKind = "open-external"
	ActionCopyEmail    ActionKind = "copy-email"
)

// ParseActionKind validates an action name
func ParseActionKind(s string) (ActionKind, error) {
	switch k := ActionKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ActionToggleTheme, ActionOpenExternal, ActionCopyEmail:
		return k, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// Target is what activating a navigation entry does. It is either a
// RouteTarget or an ActionTarget; a nil Target makes the entry inert.
type Target interface {
	isTarget()
}

// RouteTarget navigates to a client route such as "/resume" or "/#projects"
type RouteTarget struct {
	Path string
}

func (RouteTarget) isTarget() {}

// ActionTarget runs a named action. Arg carries the action's parameter,
// e.g. the URL for ActionOpenExternal.
type ActionTarget struct {
	Kind ActionKind
	Arg  string
}

func (ActionTarget) isTarget() {}

// NavigationEntry is one static palette record
type NavigationEntry struct {
	ID          string
	Label       string
	Icon        string
	Category    Category
	Target      Target
	Shortcut    string
	Description string
}

// Section is a named content target rendered in content view
type Section string

const (
	SectionHome     Section = "home"
	SectionAbout    Section = "about"
	SectionProjects Section = "projects"
	SectionSkills   Section = "skills"
	SectionStats    Section = "stats"
	SectionResume   Section = "resume"
	SectionContact  Section = "contact"
)

// Sections lists the sections in page order
var Sections = []Section{
	SectionHome, SectionAbout, SectionProjects, SectionSkills,
	SectionStats, SectionResume, SectionContact,
}

// Title returns the heading for a section
func (s Section) Title() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionAbout:
		return "About"
	case SectionProjects:
		return "Projects"
	case SectionSkills:
		return "Skills"
	case SectionStats:
		return "Stats"
	case SectionResume:
		return "Resume"
	case SectionContact:
		return "Contact"
	default:
		return string(s)
	}
}

// Route returns the client route that shows the section. Home sub-sections
// are anchors on the home page.
func (s Section) Route() string {
	switch s {
	case SectionHome:
		return "/"
	case SectionResume:
		return "/resume"
	case SectionContact:
		return "/contact"
	default:
		return "/#" + string(s)
	}
}

// SectionForRoute maps a client route back to a section. It returns false
// for routes that would render the not-found page.
func SectionForRoute(route string) (Section, bool) {
	path, anchor, _ := strings.Cut(strings.TrimSpace(route), "#")
	path = strings.TrimSuffix(path, "/")
	switch path {
	case "":
		if anchor == "" {
			return SectionHome, true
		}
		for _, s := range Sections {
			if string(s) == anchor && s.Route() == "/#"+anchor {
				return s, true
			}
		}
		return "", false
	case "/resume":
		return SectionResume, true
	case "/contact":
		return SectionContact, true
	default:
		return "", false
	}
}

// Link is an external profile link
type Link struct {
	Label string
	URL   string
}

// Profile holds the biographical content
type Profile struct {
	Name     string
	Role     string
	Tagline  string
	Email    string
	Location string
	About    string // markdown
	Links    []Link
}

// Project is one gallery record
type Project struct {
	ID       string
	Title    string
	Summary  string
	Body     string // markdown
	Tags     []string
	Category string
	RepoURL  string
	LiveURL  string
	Featured bool
	Year     int
}

// Skill is one skills-grid record
type Skill struct {
	Name     string
	Category string
	Level    int // 1-5
}

// StatSample is one coding-statistics widget value
type StatSample struct {
	Label string
	Value int64
	Unit  string
}

// LanguageShare is one slice of the language breakdown
type LanguageShare struct {
	Name    string
	Percent float64
}

// ResumeItem is a position, degree or certificate
type ResumeItem struct {
	Title        string
	Organization string
	Start        string
	End          string
	Bullets      []string
}

// Resume holds resume content
type Resume struct {
	Headline     string
	Experience   []ResumeItem
	Education    []ResumeItem
	Certificates []ResumeItem
}

// ContactMessage is a submitted contact form
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Body      string
	CreatedAt time.Time
}
