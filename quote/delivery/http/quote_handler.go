package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	deliveryhttp "github.com/predictmarkets/tqs/delivery/http"
	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
	"github.com/predictmarkets/tqs/quote/types"
)

// QuoteHandler  represent the httphandler for quotes
type QuoteHandler struct {
	QUsecase mvc.QuoteUsecase
}

const resourcePrefix = "/quote"

func formatQuoteResource(resource string) string {
	return resourcePrefix + resource
}

// NewQuoteHandler will initialize the quote/ resources endpoint
func NewQuoteHandler(e *echo.Echo, us mvc.QuoteUsecase) {
	handler := &QuoteHandler{
		QUsecase: us,
	}

	e.GET(formatQuoteResource("/spot-price"), handler.GetSpotPrice)
	e.GET(formatQuoteResource("/out-given-in"), handler.GetOutGivenIn)
	e.GET(formatQuoteResource("/in-given-out"), handler.GetInGivenOut)
}

// @Summary Spot price
// @Description Returns the spot price of the asset received in units of the asset spent, swap fee included.
// @Description The pool is either a stored pool given by poolID and outcome, or given by explicit parameters.
// @ID get-quote-spot-price
// @Produce  json
// @Param  poolID      query  int     false  "Stored pool ID"
// @Param  outcome     query  string  false  "Outcome asset of the stored pool, required with poolID"
// @Param  direction   query  string  false  "buy (default) or sell, only with poolID"
// @Param  balanceIn   query  string  false  "Reserve of the asset spent"
// @Param  weightIn    query  string  false  "Weight of the asset spent"
// @Param  balanceOut  query  string  false  "Reserve of the asset received"
// @Param  weightOut   query  string  false  "Weight of the asset received"
// @Param  swapFee     query  string  false  "Swap fee in [0, 1), zero by default"
// @Success 200  {object}  domain.Quote  "The spot price quote"
// @Router /quote/spot-price [get]
func (a *QuoteHandler) GetSpotPrice(c echo.Context) error {
	var req types.PoolRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	quote, err := a.QUsecase.GetSpotPrice(c.Request().Context(), req.QuoteRequest)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, quote)
}

// @Summary Out given in
// @Description Returns the amount received for spending exactly the given amount.
// @ID get-quote-out-given-in
// @Produce  json
// @Param  amount      query  string  true   "Amount of the asset spent"
// @Param  poolID      query  int     false  "Stored pool ID"
// @Param  outcome     query  string  false  "Outcome asset of the stored pool, required with poolID"
// @Param  direction   query  string  false  "buy (default) or sell, only with poolID"
// @Param  balanceIn   query  string  false  "Reserve of the asset spent"
// @Param  weightIn    query  string  false  "Weight of the asset spent"
// @Param  balanceOut  query  string  false  "Reserve of the asset received"
// @Param  weightOut   query  string  false  "Weight of the asset received"
// @Param  swapFee     query  string  false  "Swap fee in [0, 1), zero by default"
// @Success 200  {object}  domain.Quote  "The exact-in quote"
// @Router /quote/out-given-in [get]
func (a *QuoteHandler) GetOutGivenIn(c echo.Context) error {
	var req types.AmountRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	quote, err := a.QUsecase.GetOutGivenIn(c.Request().Context(), req.QuoteRequest)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, quote)
}

// @Summary In given out
// @Description Returns the amount that must be spent to receive exactly the given amount.
// @Description The amount must be less than the reserve of the asset received.
// @ID get-quote-in-given-out
// @Produce  json
// @Param  amount      query  string  true   "Amount of the asset received"
// @Param  poolID      query  int     false  "Stored pool ID"
// @Param  outcome     query  string  false  "Outcome asset of the stored pool, required with poolID"
// @Param  direction   query  string  false  "buy (default) or sell, only with poolID"
// @Param  balanceIn   query  string  false  "Reserve of the asset spent"
// @Param  weightIn    query  string  false  "Weight of the asset spent"
// @Param  balanceOut  query  string  false  "Reserve of the asset received"
// @Param  weightOut   query  string  false  "Weight of the asset received"
// @Param  swapFee     query  string  false  "Swap fee in [0, 1), zero by default"
// @Success 200  {object}  domain.Quote  "The exact-out quote"
// @Router /quote/in-given-out [get]
func (a *QuoteHandler) GetInGivenOut(c echo.Context) error {
	var req types.AmountRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	quote, err := a.QUsecase.GetInGivenOut(c.Request().Context(), req.QuoteRequest)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, quote)
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, types.ErrPoolIDNotValid) || errors.Is(err, types.ErrOutcomeRequired) {
		return http.StatusBadRequest
	}

	statusCode := domain.GetStatusCode(err)
	if statusCode == http.StatusInternalServerError {
		logrus.Error(err)
	}

	return statusCode
}
