package server

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/viewstate"
)

const htmlContentType = "text/html; charset=utf-8"

// linker points header controls at the /ui dispatch endpoint.
type linker struct{}

func (linker) Toggle(s viewstate.State, a viewstate.Action) string {
	return withQuery("/ui/"+string(a), s.Query())
}

func (linker) Nav(s viewstate.State, anchor string) string {
	q := s.Query()
	q.Set("to", anchor)
	return withQuery("/ui/"+string(viewstate.ActionCloseMenu), q)
}

func withQuery(path string, q url.Values) string {
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

func (s *Server) pageFor(c *gin.Context) render.Page {
	return render.Page{
		Content: s.store.Current(),
		State:   viewstate.FromQuery(c.Request.URL.Query()),
		Links:   linker{},
		Year:    s.now().Year(),
	}
}

// page renders the whole document for the state in the query.
func (s *Server) page(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, s.pageFor(c)); err != nil {
		logger(c).Error().Err(err).Msg("Error rendering page")
		c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

// dispatch applies a controller action to the state in the query and
// redirects to the page for the resulting state.
func (s *Server) dispatch(c *gin.Context) {
	state := viewstate.FromQuery(c.Request.URL.Query())
	if err := state.Apply(viewstate.Action(c.Param("action"))); err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	target := withQuery("/", state.Query())
	if to := c.Query("to"); render.HasSection(to) {
		target += "#" + to
	}
	c.Redirect(http.StatusSeeOther, target)
}

// section renders one composite section as an HTML fragment.
func (s *Server) section(c *gin.Context) {
	var buf bytes.Buffer
	err := s.renderer.Section(&buf, c.Param("id"), s.pageFor(c))
	switch {
	case errors.Is(err, render.ErrUnknownSection):
		c.String(http.StatusNotFound, err.Error())
	case err != nil:
		logger(c).Error().Err(err).Str("section", c.Param("id")).Msg("Error rendering section")
		c.String(http.StatusInternalServerError, "Sorry, the section could not be rendered.")
	default:
		c.Data(http.StatusOK, htmlContentType, buf.Bytes())
	}
}
