package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/predictmarkets/tqs/domain"
)

// GoMiddleware holds the middlewares shared by every route.
type GoMiddleware struct {
	corsConfig domain.CORSConfig
}

const unmatchedRoute = "unmatched"

var (
	// tqs_requests_total
	//
	// counter of served requests
	//
	// Has the following labels:
	// * method - the HTTP method
	// * endpoint - the route template, e.g. /trade/sessions/:id/edit
	// * status - the response status code
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tqs_requests_total",
			Help: "Total number of requests.",
		},
		[]string{"method", "endpoint", "status"},
	)

	// tqs_request_duration_seconds
	//
	// histogram of request latencies, same labels as tqs_requests_total without status
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tqs_request_duration_seconds",
			Help:    "Histogram of request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestLatency)
}

// InitMiddleware initialize the middleware
func InitMiddleware(corsConfig *domain.CORSConfig) *GoMiddleware {
	m := &GoMiddleware{}
	if corsConfig != nil {
		m.corsConfig = *corsConfig
	}
	return m
}

// CORS sets the configured CORS headers and answers preflight requests.
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Response().Header()
		header.Set(echo.HeaderAccessControlAllowOrigin, m.corsConfig.AllowedOrigin)
		header.Set(echo.HeaderAccessControlAllowHeaders, m.corsConfig.AllowedHeaders)
		header.Set(echo.HeaderAccessControlAllowMethods, m.corsConfig.AllowedMethods)

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusNoContent)
		}

		return next(c)
	}
}

// InstrumentMiddleware counts and times requests by route template, so that
// session and pool ids do not create a series per request. The route template
// is also stored in the request context.
func (m *GoMiddleware) InstrumentMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		method := c.Request().Method
		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), domain.RequestPathCtxKey, route)))

		err := next(c)
		if err != nil {
			// Let echo write the error response so its status is recorded.
			c.Error(err)
		}

		requestLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()

		return nil
	}
}

// TraceWithParamsMiddleware starts a server span per request, continuing any
// propagated trace, and records the route id and query parameters.
func (m *GoMiddleware) TraceWithParamsMiddleware(tracerName string) echo.MiddlewareFunc {
	tracer := otel.Tracer(tracerName)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			parentCtx := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))

			ctx, span := tracer.Start(parentCtx, c.Path(), trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			attributes := []attribute.KeyValue{attribute.String("http.method", req.Method)}
			if id := c.Param("id"); id != "" {
				attributes = append(attributes, attribute.String("http.route.id", id))
			}
			// Only the first value of each parameter is recorded.
			for key, values := range c.QueryParams() {
				attributes = append(attributes, attribute.String(key, values[0]))
			}
			span.SetAttributes(attributes...)

			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
