// README: Search and quote handlers: search form -> carrier query -> cab list.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gocab/internal/modules/catalog"
	"gocab/internal/modules/pricing"
	"gocab/internal/modules/tripctx"
)

type QuoteHandler struct {
	pricing *pricing.Service
	timeout time.Duration
}

// NewQuoteHandler bounds each distance lookup by timeout; zero means no bound.
func NewQuoteHandler(svc *pricing.Service, timeout time.Duration) *QuoteHandler {
	return &QuoteHandler{pricing: svc, timeout: timeout}
}

type searchResponse struct {
	Query string              `json:"query"`
	Trip  pricing.TripRequest `json:"trip"`
}

// Search turns the home page form into the query for the cab list.
func (h *QuoteHandler) Search(c *gin.Context) {
	var form tripctx.SearchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	tc := tripctx.FromSearch(form)
	writeJSON(c, http.StatusOK, searchResponse{Query: tc.Query(), Trip: tc.Trip})
}

type outstationQuoteView struct {
	pricing.OutstationQuote
	BookingQuery string `json:"bookingQuery"`
}

type localQuoteView struct {
	pricing.LocalQuote
	BookingQuery string `json:"bookingQuery"`
}

type localGroupView struct {
	Package catalog.LocalPackage `json:"package"`
	Quotes  []localQuoteView     `json:"quotes"`
}

type quotesResponse struct {
	Trip          pricing.TripRequest   `json:"trip"`
	DistanceKm    float64               `json:"distanceKm,omitempty"`
	Quotes        []outstationQuoteView `json:"quotes,omitempty"`
	Packages      []localGroupView      `json:"packages,omitempty"`
	ActivePackage catalog.PackageKey    `json:"activePackage,omitempty"`
}

// List prices every vehicle for the carried trip. Each quote carries the
// query that opens the booking page for it.
func (h *QuoteHandler) List(c *gin.Context) {
	tc, err := tripctx.Parse(c.Request.URL.Query())
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	set, err := h.pricing.Build(ctx, tc.Trip)
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	resp := quotesResponse{
		Trip:          tc.Trip,
		DistanceKm:    set.DistanceKm,
		ActivePackage: set.ActivePackage,
	}
	for _, q := range set.Outstation {
		resp.Quotes = append(resp.Quotes, outstationQuoteView{
			OutstationQuote: q,
			BookingQuery:    tc.WithOutstationQuote(q).Query(),
		})
	}
	for _, g := range set.Local {
		view := localGroupView{Package: g.Package, Quotes: make([]localQuoteView, 0, len(g.Quotes))}
		for _, q := range g.Quotes {
			view.Quotes = append(view.Quotes, localQuoteView{
				LocalQuote:   q,
				BookingQuery: tc.WithLocalQuote(q).Query(),
			})
		}
		resp.Packages = append(resp.Packages, view)
	}
	writeJSON(c, http.StatusOK, resp)
}
