package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"phonemechanic-system/internal/catalog"
	"phonemechanic-system/internal/directory"
)

type CatalogHTTPHandler struct {
	catalog   *catalog.Catalog
	directory *directory.Directory
	matcher   *directory.Matcher
}

func NewCatalogHTTPHandler(cat *catalog.Catalog, dir *directory.Directory) *CatalogHTTPHandler {
	return &CatalogHTTPHandler{
		catalog:   cat,
		directory: dir,
		matcher:   directory.NewMatcher(dir),
	}
}

func (h *CatalogHTTPHandler) ListServices(c *gin.Context) {
	grouped, _ := strconv.ParseBool(c.Query("grouped"))
	if grouped {
		c.JSON(http.StatusOK, successResponse("Services retrieved successfully", h.catalog.Grouped()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Services retrieved successfully", h.catalog.All()))
}

func (h *CatalogHTTPHandler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Customers retrieved successfully", h.directory.All()))
}

type MatchCustomerResponse struct {
	Found        bool        `json:"found"`
	Customer     interface{} `json:"customer,omitempty"`
	VisitSummary string      `json:"visit_summary,omitempty"`
}

// MatchCustomer runs the phone-prefix lookup used by the order-entry
// autofill. The visit summary is advisory display data only.
func (h *CatalogHTTPHandler) MatchCustomer(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, errorResponse("phone query parameter required"))
		return
	}

	result, found := h.matcher.Match(phone)
	if !found {
		c.JSON(http.StatusOK, successResponse("No matching customer", MatchCustomerResponse{Found: false}))
		return
	}

	c.JSON(http.StatusOK, successResponse("Customer matched", MatchCustomerResponse{
		Found:        true,
		Customer:     result.Customer,
		VisitSummary: result.VisitSummary(),
	}))
}

func (h *CatalogHTTPHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Device models retrieved successfully", directory.SuggestedModels(h.directory)))
}
