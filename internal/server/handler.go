package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lepinkainen/bookexplorer/internal/book"
	"github.com/lepinkainen/bookexplorer/internal/view"
)

// Handler serves search and detail lookups. Every request gets fresh view
// controllers; nothing is cached between requests.
type Handler struct {
	Catalog view.Catalog
}

func NewHandler(catalog view.Catalog) *Handler {
	return &Handler{Catalog: catalog}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.search)
	rg.GET("/works/:id", h.work)
}

type searchResponse struct {
	Query string                  `json:"query"`
	Items []book.SearchResultItem `json:"items"`
}

func (h *Handler) search(c *gin.Context) {
	ctrl := view.NewSearchController(h.Catalog)
	state, issued := ctrl.Submit(c.Request.Context(), c.Query("q"))
	if !issued {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	if state.Phase == view.PhaseError {
		c.JSON(http.StatusBadGateway, gin.H{"error": state.Err})
		return
	}

	c.JSON(http.StatusOK, searchResponse{Query: state.Query, Items: state.Results})
}

func (h *Handler) work(c *gin.Context) {
	id := c.Param("id")

	state := view.NewDetailController(h.Catalog, id).Load(c.Request.Context())
	if state.Phase != view.PhaseSuccess || state.Detail == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": state.Err})
		return
	}

	c.JSON(http.StatusOK, state.Detail)
}
