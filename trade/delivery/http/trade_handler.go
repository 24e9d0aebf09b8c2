package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	deliveryhttp "github.com/predictmarkets/tqs/delivery/http"
	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
	"github.com/predictmarkets/tqs/log"
	"github.com/predictmarkets/tqs/trade/types"
)

const (
	pingPeriod = 30 * time.Second
	writeWait  = 10 * time.Second
)

// TradeHandler represent the httphandler for trade sessions
type TradeHandler struct {
	TUsecase mvc.TradeUsecase
	logger   log.Logger
}

const resourcePrefix = "/trade/sessions"

func formatTradeResource(resource string) string {
	return resourcePrefix + resource
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is enforced by the middleware for the regular endpoints.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewTradeHandler will initialize the trade/ resources endpoint
func NewTradeHandler(e *echo.Echo, tu mvc.TradeUsecase, logger log.Logger) {
	handler := &TradeHandler{
		TUsecase: tu,
		logger:   logger,
	}

	e.POST(formatTradeResource(""), handler.CreateSession)
	e.GET(formatTradeResource("/:id"), handler.GetSnapshot)
	e.POST(formatTradeResource("/:id/edit"), handler.ApplyEdit)
	e.POST(formatTradeResource("/:id/direction"), handler.SetDirection)
	e.POST(formatTradeResource("/:id/outcome"), handler.SetOutcomeAsset)
	e.POST(formatTradeResource("/:id/balance"), handler.SetBalance)
	e.GET(formatTradeResource("/:id/bound"), handler.GetSwapBound)
	e.DELETE(formatTradeResource("/:id"), handler.CloseSession)
	e.GET(formatTradeResource("/:id/stream"), handler.StreamSession)
}

// @Summary Create a trade session
// @Description Starts a trade session for the outcome asset of the given pool.
// @Description All amounts of the returned snapshot are zero until the first edit.
// @ID create-trade-session
// @Produce  json
// @Param  poolID     query  int     true   "The ID of the pool to trade against."
// @Param  outcome    query  string  true   "The outcome asset traded."
// @Param  direction  query  string  false  "buy (default) or sell."
// @Param  balance    query  string  true   "The user's balance of the asset spent, either a decimal or a decimal coin."
// @Success 200  {object}  domain.TradeSessionResult  "The created session"
// @Router /trade/sessions [post]
func (h *TradeHandler) CreateSession(c echo.Context) error {
	var req types.CreateSessionRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	ctx, span := deliveryhttp.Span(c)

	result, err := h.TUsecase.CreateSession(ctx, req.PoolID, req.Outcome, req.Direction, req.Balance.Amount)
	if err != nil {
		deliveryhttp.RecordSpanError(ctx, span, err)
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Get a trade session snapshot
// @ID get-trade-session
// @Produce  json
// @Param  id  path  string  true  "Session ID"
// @Success 200  {object}  domain.TradeSessionResult  "The current session snapshot"
// @Router /trade/sessions/{id} [get]
func (h *TradeHandler) GetSnapshot(c echo.Context) error {
	result, err := h.TUsecase.GetSnapshot(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Edit a trade amount
// @Description Records a user edit of one amount field. The other two fields are
// @Description recomputed from it. Values beyond the feasible maximum are clamped.
// @ID edit-trade-session
// @Produce  json
// @Param  id     path   string  true  "Session ID"
// @Param  field  query  string  true  "input, output or percent"
// @Param  value  query  string  true  "Non-negative decimal value of the field"
// @Success 200  {object}  domain.TradeSessionResult  "The reconciled session snapshot"
// @Router /trade/sessions/{id}/edit [post]
func (h *TradeHandler) ApplyEdit(c echo.Context) error {
	var req types.EditRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	ctx, span := deliveryhttp.Span(c)

	result, err := h.TUsecase.ApplyEdit(ctx, req.SessionID, req.Field, req.Value)
	if err != nil {
		deliveryhttp.RecordSpanError(ctx, span, err)
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Switch the trade direction
// @Description Resets all amounts of the session.
// @ID set-trade-session-direction
// @Produce  json
// @Param  id         path   string  true  "Session ID"
// @Param  direction  query  string  true  "buy or sell"
// @Param  balance    query  string  true  "The user's balance of the asset spent in the new direction"
// @Success 200  {object}  domain.TradeSessionResult  "The reset session snapshot"
// @Router /trade/sessions/{id}/direction [post]
func (h *TradeHandler) SetDirection(c echo.Context) error {
	var req types.DirectionRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	result, err := h.TUsecase.SetDirection(c.Request().Context(), req.SessionID, req.Direction, req.Balance.Amount)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Switch the traded outcome asset
// @Description Resets all amounts of the session.
// @ID set-trade-session-outcome
// @Produce  json
// @Param  id       path   string  true  "Session ID"
// @Param  outcome  query  string  true  "The outcome asset traded"
// @Param  balance  query  string  true  "The user's balance of the asset spent"
// @Success 200  {object}  domain.TradeSessionResult  "The reset session snapshot"
// @Router /trade/sessions/{id}/outcome [post]
func (h *TradeHandler) SetOutcomeAsset(c echo.Context) error {
	var req types.OutcomeRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	result, err := h.TUsecase.SetOutcomeAsset(c.Request().Context(), req.SessionID, req.Outcome, req.Balance.Amount)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Update the user balance
// @ID set-trade-session-balance
// @Produce  json
// @Param  id       path   string  true  "Session ID"
// @Param  balance  query  string  true  "The user's balance of the asset spent"
// @Success 200  {object}  domain.TradeSessionResult  "The reconciled session snapshot"
// @Router /trade/sessions/{id}/balance [post]
func (h *TradeHandler) SetBalance(c echo.Context) error {
	var req types.BalanceRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	result, err := h.TUsecase.SetBalance(c.Request().Context(), req.SessionID, req.Balance.Amount)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Slippage bounded swap
// @Description Returns the swap handed to the transaction builder. Buy trades are exact-in
// @Description bounded by min_amount_out, sell trades are exact-out bounded by max_amount_in.
// @ID get-trade-session-bound
// @Produce  json
// @Param  id        path   string  true   "Session ID"
// @Param  slippage  query  string  false  "Slippage tolerance in percent, in [0, 100). Defaults to the configured value."
// @Success 200  {object}  domain.SwapBound  "The bounded swap"
// @Router /trade/sessions/{id}/bound [get]
func (h *TradeHandler) GetSwapBound(c echo.Context) error {
	var req types.SwapBoundRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	bound, err := h.TUsecase.GetSwapBound(c.Request().Context(), req.SessionID, req.SlippagePercent)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, bound)
}

// @Summary Close a trade session
// @ID close-trade-session
// @Param  id  path  string  true  "Session ID"
// @Success 204
// @Router /trade/sessions/{id} [delete]
func (h *TradeHandler) CloseSession(c echo.Context) error {
	if err := h.TUsecase.CloseSession(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// @Summary Stream trade session snapshots
// @Description Upgrades to a websocket and pushes the session snapshot immediately and after
// @Description every change. The socket is closed when the session is closed.
// @ID stream-trade-session
// @Param  id  path  string  true  "Session ID"
// @Router /trade/sessions/{id}/stream [get]
func (h *TradeHandler) StreamSession(c echo.Context) error {
	sessionID := c.Param("id")

	updates, unsubscribe, err := h.TUsecase.Subscribe(c.Request().Context(), sessionID)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}
	defer unsubscribe()

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader already replied with an error status.
		h.logger.Debug("failed to upgrade trade session stream", zap.String("path", domain.GetURLPathFromContext(c.Request().Context())), zap.String("session_id", sessionID), zap.Error(err))
		return nil
	}
	defer conn.Close()

	// Reads only to detect the peer going away and to process control frames.
	peerClosed := make(chan struct{})
	go func() {
		defer close(peerClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-peerClosed:
			return nil
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return nil
			}
		case result, ok := <-updates:
			if !ok {
				closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed")
				_ = conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeWait))
				return nil
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(result); err != nil {
				h.logger.Debug("failed to write trade session snapshot", zap.String("session_id", sessionID), zap.Error(err))
				return nil
			}
		}
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	statusCode := domain.GetStatusCode(err)
	if statusCode == http.StatusInternalServerError {
		if isRequestError(err) {
			return http.StatusBadRequest
		}
		logrus.Error(err)
	}

	return statusCode
}

// isRequestError returns true for the request parsing errors of the trade types.
func isRequestError(err error) bool {
	switch err {
	case types.ErrPoolIDNotValid,
		types.ErrSessionIDRequired,
		types.ErrOutcomeRequired,
		types.ErrBalanceNotValid,
		types.ErrBalanceDenomNotSpent:
		return true
	default:
		return false
	}
}
