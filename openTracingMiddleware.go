package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/rs/zerolog/log"
)

// OpenTracingMiddleware creates a span for each non-probe request and stores it in the request context
func OpenTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		if isProbe(c.Request.URL.Path) {
			c.Next()
			return
		}

		// webhooks and manual callers rarely send a trace context
		tracingCtx, err := opentracing.GlobalTracer().Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(c.Request.Header))
		if err != nil && err != opentracing.ErrSpanContextNotFound {
			log.Warn().Err(err).Msgf("Failed extracting trace context from http headers for %v %v", c.Request.Method, c.Request.URL.Path)
		}

		span := opentracing.StartSpan(fmt.Sprintf("%v %v", c.Request.Method, c.FullPath()), ext.RPCServerOption(tracingCtx))
		defer span.Finish()

		ext.SpanKindRPCServer.Set(span)
		ext.HTTPMethod.Set(span, c.Request.Method)
		ext.HTTPUrl.Set(span, c.Request.URL.String())

		c.Request = c.Request.WithContext(opentracing.ContextWithSpan(c.Request.Context(), span))

		c.Next()

		statusCode := c.Writer.Status()
		ext.HTTPStatusCode.Set(span, uint16(statusCode))
		if statusCode >= 500 {
			ext.Error.Set(span, true)
		}
	}
}
