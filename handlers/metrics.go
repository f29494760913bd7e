package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"horion-farms/api/apperr"
)

var (
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "horion_http_request_duration_seconds",
		Help:    "Time spent serving HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "horion_orders_created_total",
		Help: "The total number of accepted orders",
	})

	paymentsInitialized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "horion_payments_initialized_total",
		Help: "Payment initializations by mode",
	}, []string{"mode"})

	paymentsVerified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "horion_payments_verified_total",
		Help: "Payment verifications by outcome",
	}, []string{"status"})
)

func metricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start).Seconds()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = apperr.HTTPStatus(err)
			}
		}

		route := c.Route().Path
		requestDuration.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Observe(duration)

		return err
	}
}
