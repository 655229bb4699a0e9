package web

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/metrics"
	"github.com/Belphemur/tvfinder/internal/reporting"
	"github.com/Belphemur/tvfinder/internal/ui"
)

const htmlContentType = "text/html; charset=utf-8"

// View label values for page_views_total.
const (
	viewHome     = "home"
	viewSearch   = "search"
	viewEpisodes = "episodes"
	viewFragment = "episodes_fragment"
	viewAPI      = "api_search"
	viewAPIEps   = "api_episodes"
)

// Handler serves the page, fragment and JSON routes over a show directory.
type Handler struct {
	directory ui.Directory
}

// NewHandler creates a Handler backed by directory.
func NewHandler(directory ui.Directory) *Handler {
	return &Handler{directory: directory}
}

// RegisterRoutes registers the page and fragment routes on r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.handleHome)
	r.GET("/search", h.handleSearch)
	r.GET("/shows/:id/episodes", h.handleEpisodesFragment)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}

// RegisterAPIRoutes registers the JSON routes on r.
func (h *Handler) RegisterAPIRoutes(r gin.IRouter) {
	r.GET("/shows", h.handleAPISearch)
	r.GET("/shows/:id/episodes", h.handleAPIEpisodes)
}

func (h *Handler) handleHome(c *gin.Context) {
	if _, ok := c.GetQuery("q"); ok {
		h.handleSearch(c)
		return
	}

	page, err := ui.NewPage("")
	if err != nil {
		h.renderError(c, viewHome, err)
		return
	}
	h.renderPage(c, viewHome, http.StatusOK, page)
}

// handleSearch runs the search form submission and, when the request names a
// show through ?episodes=, the "Episodes" action on that show's card.
func (h *Handler) handleSearch(c *gin.Context) {
	ctx := c.Request.Context()
	term := c.Query("q")

	page, err := ui.NewPage(term)
	if err != nil {
		h.renderError(c, viewSearch, err)
		return
	}
	controller := ui.NewController(h.directory, page.Regions())

	view := viewSearch
	if err := controller.Search(ctx, term); err != nil {
		h.report(c, view, err)
		h.renderPage(c, view, statusFor(err), page)
		return
	}

	rawID, ok := c.GetQuery("episodes")
	if !ok {
		h.renderPage(c, view, http.StatusOK, page)
		return
	}

	view = viewEpisodes
	if err := controller.ShowEpisodesFor(ctx, page, rawID); err != nil {
		h.report(c, view, err)
		h.renderPage(c, view, statusFor(err), page)
		return
	}
	h.renderPage(c, view, http.StatusOK, page)
}

// handleEpisodesFragment returns only the rendered episode list.
func (h *Handler) handleEpisodesFragment(c *gin.Context) {
	showID, err := ui.ParseShowID(c.Param("id"))
	if err != nil {
		h.fragmentError(c, err)
		return
	}

	episodes, err := h.directory.GetEpisodesOfShow(c.Request.Context(), showID)
	if err != nil {
		h.report(c, viewFragment, err)
		h.fragmentError(c, err)
		return
	}

	page, err := ui.NewPage("")
	if err != nil {
		h.fragmentError(c, err)
		return
	}
	regions := page.Regions()
	if err := ui.PopulateEpisodes(regions.EpisodesList, regions.EpisodesArea, episodes); err != nil {
		h.fragmentError(c, err)
		return
	}

	fragment, err := page.Fragment(ui.EpisodesListID)
	if err != nil {
		h.fragmentError(c, err)
		return
	}

	metrics.PageViewsTotal.WithLabelValues(viewFragment, outcome(http.StatusOK)).Inc()
	c.Data(http.StatusOK, htmlContentType, []byte(fragment))
}

func (h *Handler) handleAPISearch(c *gin.Context) {
	shows, err := h.directory.SearchShows(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.report(c, viewAPI, err)
		h.apiError(c, viewAPI, err)
		return
	}

	metrics.PageViewsTotal.WithLabelValues(viewAPI, outcome(http.StatusOK)).Inc()
	c.JSON(http.StatusOK, shows)
}

func (h *Handler) handleAPIEpisodes(c *gin.Context) {
	showID, err := ui.ParseShowID(c.Param("id"))
	if err != nil {
		h.apiError(c, viewAPIEps, err)
		return
	}

	episodes, err := h.directory.GetEpisodesOfShow(c.Request.Context(), showID)
	if err != nil {
		h.report(c, viewAPIEps, err)
		h.apiError(c, viewAPIEps, err)
		return
	}

	metrics.PageViewsTotal.WithLabelValues(viewAPIEps, outcome(http.StatusOK)).Inc()
	c.JSON(http.StatusOK, episodes)
}

func (h *Handler) renderPage(c *gin.Context, view string, status int, page *ui.Page) {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		h.renderError(c, view, err)
		return
	}

	metrics.PageViewsTotal.WithLabelValues(view, outcome(status)).Inc()
	c.Data(status, htmlContentType, buf.Bytes())
}

func (h *Handler) renderError(c *gin.Context, view string, err error) {
	logger := config.GetLogger()
	logger.Error().Err(err).Str("view", view).Msg("Failed to render page")

	metrics.PageViewsTotal.WithLabelValues(view, outcome(http.StatusInternalServerError)).Inc()
	c.String(http.StatusInternalServerError, "The page could not be rendered.")
}

func (h *Handler) fragmentError(c *gin.Context, err error) {
	status := statusFor(err)
	metrics.PageViewsTotal.WithLabelValues(viewFragment, outcome(status)).Inc()
	c.String(status, apiMessage(status))
}

func (h *Handler) apiError(c *gin.Context, view string, err error) {
	status := statusFor(err)
	metrics.PageViewsTotal.WithLabelValues(view, outcome(status)).Inc()
	c.JSON(status, gin.H{"error": apiMessage(status)})
}

// report forwards upstream failures to Sentry.
func (h *Handler) report(c *gin.Context, view string, err error) {
	if !isUpstream(err) {
		return
	}
	reporting.CaptureError(err, map[string]string{
		"view":       view,
		"request_id": c.GetString(requestIDKey),
	})
}
