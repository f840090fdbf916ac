package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/internal/storage"
	"folio/internal/theme"
)

const (
	schemeCookie = "folio.scheme"
	cookieMaxAge = 365 * 24 * 60 * 60
)

// cookieStore keeps preferences in cookies on the current request
type cookieStore struct {
	c      *gin.Context
	secure bool
}

func (s cookieStore) Get(key string) (string, error) {
	v, err := s.c.Cookie(key)
	if err != nil || v == "" {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (s cookieStore) Set(key, value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", s.secure, true)
	return nil
}

// requestScheme is the browser's last reported color scheme. Browsers
// that never reported one are treated as dark.
func requestScheme(c *gin.Context) *theme.Scheme {
	v, err := c.Cookie(schemeCookie)
	return theme.NewScheme(err != nil || v != "light")
}

func (s *Server) controller(c *gin.Context) *theme.Controller {
	return theme.NewController(cookieStore{c: c, secure: s.secureCookie}, requestScheme(c), nil, nil)
}

func (s *Server) effectiveTheme(c *gin.Context) theme.Preference {
	ctl := s.controller(c)
	defer ctl.Close()
	return ctl.Effective()
}

func (s *Server) handleThemeToggle(c *gin.Context) {
	ctl := s.controller(c)
	defer ctl.Close()

	pref := ctl.Toggle()
	c.JSON(http.StatusOK, gin.H{
		"preference": pref,
		"effective":  ctl.Effective(),
		"label":      pref.Label(),
	})
}

type schemeRequest struct {
	Scheme string `json:"scheme" form:"scheme" binding:"required,oneof=dark light"`
}

func (s *Server) handleThemeScheme(c *gin.Context) {
	var req schemeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheme must be dark or light"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(schemeCookie, req.Scheme, cookieMaxAge, "/", "", s.secureCookie, true)

	scheme := theme.NewScheme(req.Scheme == "dark")
	ctl := theme.NewController(cookieStore{c: c, secure: s.secureCookie}, scheme, nil, nil)
	defer ctl.Close()

	c.JSON(http.StatusOK, gin.H{
		"preference": ctl.Preference(),
		"effective":  ctl.Effective(),
	})
}
