package web

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/logger"
	"folio/internal/storage"
	"folio/internal/ui/services/search"
)

func (s *Server) handleHome(c *gin.Context) {
	p := s.content()
	filter := s.projectFilter(c, p)

	data := s.page(c, p.Profile.Name, domain.SectionHome)
	data["Filter"] = filter
	data["Filters"] = p.ProjectCategories()
	data["Projects"] = p.ProjectsFor(filter)
	data["Skills"] = p.Skills
	data["Stats"] = p.Stats
	data["Languages"] = p.Languages
	c.HTML(http.StatusOK, "index.html", data)
}

// projectFilter picks the gallery filter from ?filter=, remembering it in
// a cookie, or falls back to the remembered one. Unknown values mean all.
func (s *Server) projectFilter(c *gin.Context, p *content.Portfolio) string {
	store := cookieStore{c: c, secure: s.secureCookie}
	filter, ok := c.GetQuery("filter")
	if !ok {
		filter = storage.GetOr(store, storage.ProjectFilterKey, content.AllFilter)
	}
	if !slices.Contains(p.ProjectCategories(), filter) {
		filter = content.AllFilter
	}
	if ok {
		if err := store.Set(storage.ProjectFilterKey, filter); err != nil {
			logger.Warn("web: saving project filter: %v", err)
		}
	}
	return filter
}

func (s *Server) handleResume(c *gin.Context) {
	data := s.page(c, "Resume", domain.SectionResume)
	data["Resume"] = s.content().Resume
	c.HTML(http.StatusOK, "resume.html", data)
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", s.page(c, "Contact", domain.SectionContact))
}

type contactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

func (s *Server) handleContactSubmit(c *gin.Context) {
	data := s.page(c, "Contact", domain.SectionContact)

	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		data["Form"] = form
		data["Error"] = "Please fill in your name, a valid email address and a message."
		c.HTML(http.StatusUnprocessableEntity, "contact.html", data)
		return
	}

	if s.contact == nil {
		data["Form"] = form
		data["Error"] = "Sorry, the contact form is unavailable right now."
		c.HTML(http.StatusServiceUnavailable, "contact.html", data)
		return
	}

	_, err := s.contact.Submit(c.Request.Context(), contact.Draft{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, contact.ErrInvalidEmail) || errors.Is(err, contact.ErrEmptyReply) {
			status = http.StatusUnprocessableEntity
		} else {
			logger.Error("Web: contact submit failed: %v", err)
		}
		data["Form"] = form
		data["Error"] = "Sorry, there was an error sending your message. Please try again later."
		c.HTML(status, "contact.html", data)
		return
	}

	data["Success"] = "Thank you for your message! I'll get back to you soon."
	c.HTML(http.StatusOK, "contact.html", data)
}

func (s *Server) handleNotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	data := s.page(c, "Not found", "")
	data["Path"] = c.Request.URL.Path
	c.HTML(http.StatusNotFound, "notfound.html", data)
}

type suggestionsResponse struct {
	Query  string         `json:"query"`
	Count  int            `json:"count"`
	Groups []search.Group `json:"groups"`
}

// handleSuggestions filters the navigation entries the same way the
// terminal palette does. Actions run client side, so callbacks are empty.
func (s *Server) handleSuggestions(c *gin.Context) {
	all := search.BuildSuggestions(s.content().Navigation, search.Callbacks{})
	results := search.Filter(all, c.Query("q"))
	c.JSON(http.StatusOK, suggestionsResponse{
		Query:  c.Query("q"),
		Count:  len(results),
		Groups: search.GroupByCategory(results),
	})
}
