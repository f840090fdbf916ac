// Package content loads the portfolio's static data tables: profile,
// palette navigation entries, projects, skills, stats and resume.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/domain"
)

//go:embed portfolio.toml
var embedded []byte

// EmbeddedSource names the built-in content in logs and events
const EmbeddedSource = "embedded"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid content")

// Portfolio is the decoded content document
type Portfolio struct {
	Profile    domain.Profile
	Navigation []domain.NavigationEntry
	Projects   []domain.Project
	Skills     []domain.Skill
	Stats      []domain.StatSample
	Languages  []domain.LanguageShare
	Resume     domain.Resume
	Source     string
}

type rawLink struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

type rawProfile struct {
	Name     string    `toml:"name"`
	Role     string    `toml:"role"`
	Tagline  string    `toml:"tagline"`
	Email    string    `toml:"email"`
	Location string    `toml:"location"`
	About    string    `toml:"about"`
	Links    []rawLink `toml:"links"`
}

type rawEntry struct {
	ID          string `toml:"id"`
	Label       string `toml:"label"`
	Icon        string `toml:"icon"`
	Category    string `toml:"category"`
	Route       string `toml:"route"`
	Action      string `toml:"action"`
	Arg         string `toml:"arg"`
	Shortcut    string `toml:"shortcut"`
	Description string `toml:"description"`
}

type rawProject struct {
	ID       string   `toml:"id"`
	Title    string   `toml:"title"`
	Summary  string   `toml:"summary"`
	Body     string   `toml:"body"`
	Tags     []string `toml:"tags"`
	Category string   `toml:"category"`
	RepoURL  string   `toml:"repo_url"`
	LiveURL  string   `toml:"live_url"`
	Featured bool     `toml:"featured"`
	Year     int      `toml:"year"`
}

type rawSkill struct {
	Name     string `toml:"name"`
	Category string `toml:"category"`
	Level    int    `toml:"level"`
}

type rawStat struct {
	Label string `toml:"label"`
	Value int64  `toml:"value"`
	Unit  string `toml:"unit"`
}

type rawLanguage struct {
	Name    string  `toml:"name"`
	Percent float64 `toml:"percent"`
}

type rawResumeItem struct {
	Title        string   `toml:"title"`
	Organization string   `toml:"organization"`
	Start        string   `toml:"start"`
	End          string   `toml:"end"`
	Bullets      []string `toml:"bullets"`
}

type rawResume struct {
	Headline     string          `toml:"headline"`
	Experience   []rawResumeItem `toml:"experience"`
	Education    []rawResumeItem `toml:"education"`
	Certificates []rawResumeItem `toml:"certificates"`
}

type rawDocument struct {
	Profile    rawProfile    `toml:"profile"`
	Navigation []rawEntry    `toml:"navigation"`
	Projects   []rawProject  `toml:"projects"`
	Skills     []rawSkill    `toml:"skills"`
	Stats      []rawStat     `toml:"stats"`
	Languages  []rawLanguage `toml:"languages"`
	Resume     rawResume     `toml:"resume"`
}

// Load returns the embedded portfolio
func Load() (*Portfolio, error) {
	return Parse(embedded, EmbeddedSource)
}

// LoadFile reads a portfolio document from disk
func LoadFile(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data, path)
}

// LoadPath loads path, or the embedded document when path is empty
func LoadPath(path string) (*Portfolio, error) {
	if path == "" {
		return Load()
	}
	return LoadFile(path)
}

// Parse decodes and validates a portfolio document
func Parse(data []byte, source string) (*Portfolio, error) {
	var doc rawDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	p := &Portfolio{Source: source}

	p.Profile = domain.Profile{
		Name:     doc.Profile.Name,
		Role:     doc.Profile.Role,
		Tagline:  doc.Profile.Tagline,
		Email:    doc.Profile.Email,
		Location: doc.Profile.Location,
		About:    strings.TrimSpace(doc.Profile.About),
	}
	for _, l := range doc.Profile.Links {
		p.Profile.Links = append(p.Profile.Links, domain.Link{Label: l.Label, URL: l.URL})
	}

	seen := make(map[string]bool, len(doc.Navigation))
	for i, raw := range doc.Navigation {
		entry, err := raw.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: navigation[%d]: %v", ErrInvalid, i, err)
		}
		if seen[entry.ID] {
			return nil, fmt.Errorf("%w: navigation[%d]: duplicate id %q", ErrInvalid, i, entry.ID)
		}
		seen[entry.ID] = true
		p.Navigation = append(p.Navigation, entry)
	}

	projectIDs := make(map[string]bool, len(doc.Projects))
	for i, raw := range doc.Projects {
		if raw.ID == "" || raw.Title == "" {
			return nil, fmt.Errorf("%w: projects[%d]: id and title are required", ErrInvalid, i)
		}
		if projectIDs[raw.ID] {
			return nil, fmt.Errorf("%w: projects[%d]: duplicate id %q", ErrInvalid, i, raw.ID)
		}
		projectIDs[raw.ID] = true
		p.Projects = append(p.Projects, domain.Project{
			ID:       raw.ID,
			Title:    raw.Title,
			Summary:  raw.Summary,
			Body:     strings.TrimSpace(raw.Body),
			Tags:     raw.Tags,
			Category: strings.ToLower(raw.Category),
			RepoURL:  raw.RepoURL,
			LiveURL:  raw.LiveURL,
			Featured: raw.Featured,
			Year:     raw.Year,
		})
	}

	for i, raw := range doc.Skills {
		if raw.Level < 1 || raw.Level > 5 {
			return nil, fmt.Errorf("%w: skills[%d]: level %d out of range 1-5", ErrInvalid, i, raw.Level)
		}
		p.Skills = append(p.Skills, domain.Skill{Name: raw.Name, Category: raw.Category, Level: raw.Level})
	}

	for _, raw := range doc.Stats {
		p.Stats = append(p.Stats, domain.StatSample{Label: raw.Label, Value: raw.Value, Unit: raw.Unit})
	}
	for i, raw := range doc.Languages {
		if !(raw.Percent >= 0 && raw.Percent <= 100) {
			return nil, fmt.Errorf("%w: languages[%d]: percent %v out of range 0-100", ErrInvalid, i, raw.Percent)
		}
		p.Languages = append(p.Languages, domain.LanguageShare{Name: raw.Name, Percent: raw.Percent})
	}

	p.Resume = domain.Resume{
		Headline:     doc.Resume.Headline,
		Experience:   resumeItems(doc.Resume.Experience),
		Education:    resumeItems(doc.Resume.Education),
		Certificates: resumeItems(doc.Resume.Certificates),
	}

	return p, nil
}

func (r rawEntry) toDomain() (domain.NavigationEntry, error) {
	if r.ID == "" || r.Label == "" {
		return domain.NavigationEntry{}, errors.New("id and label are required")
	}
	cat, err := domain.ParseCategory(r.Category)
	if err != nil {
		return domain.NavigationEntry{}, err
	}
	if r.Route != "" && r.Action != "" {
		return domain.NavigationEntry{}, fmt.Errorf("entry %q has both route and action", r.ID)
	}

	var target domain.Target
	switch {
	case r.Route != "":
		target = domain.RouteTarget{Path: r.Route}
	case r.Action != "":
		kind, err := domain.ParseActionKind(r.Action)
		if err != nil {
			return domain.NavigationEntry{}, err
		}
		if kind == domain.ActionOpenExternal && r.Arg == "" {
			return domain.NavigationEntry{}, fmt.Errorf("entry %q: open-external needs an arg", r.ID)
		}
		target = domain.ActionTarget{Kind: kind, Arg: r.Arg}
	}

	return domain.NavigationEntry{
		ID:          r.ID,
		Label:       r.Label,
		Icon:        r.Icon,
		Category:    cat,
		Target:      target,
		Shortcut:    r.Shortcut,
		Description: r.Description,
	}, nil
}

func resumeItems(raw []rawResumeItem) []domain.ResumeItem {
	out := make([]domain.ResumeItem, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.ResumeItem{
			Title:        r.Title,
			Organization: r.Organization,
			Start:        r.Start,
			End:          r.End,
			Bullets:      r.Bullets,
		})
	}
	return out
}

// AllFilter selects every project
const AllFilter = "all"

// ProjectCategories returns the gallery filter chips: "all" followed by
// each project category in first-seen order
func (p *Portfolio) ProjectCategories() []string {
	cats := []string{AllFilter}
	seen := map[string]bool{AllFilter: true}
	for _, pr := range p.Projects {
		if pr.Category != "" && !seen[pr.Category] {
			seen[pr.Category] = true
			cats = append(cats, pr.Category)
		}
	}
	return cats
}

// ProjectsFor returns the projects in category, featured first and then by
// year descending. Unknown categories behave like "all".
func (p *Portfolio) ProjectsFor(category string) []domain.Project {
	category = strings.ToLower(strings.TrimSpace(category))
	known := false
	for _, c := range p.ProjectCategories() {
		if c == category {
			known = true
			break
		}
	}

	var out []domain.Project
	for _, pr := range p.Projects {
		if !known || category == AllFilter || pr.Category == category {
			out = append(out, pr)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].Year > out[j].Year
	})
	return out
}

// Project looks up a project by id
func (p *Portfolio) Project(id string) (domain.Project, bool) {
	for _, pr := range p.Projects {
		if pr.ID == id {
			return pr, true
		}
	}
	return domain.Project{}, false
}
