package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/middleware"
	"storefront-api/pkg/lambda"
)

// ginHandler serves a Lambda-style handler from gin so the local server and
// the deployed functions share one request path
func ginHandler(h lambda.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := requestFromGin(c)
		if err != nil {
			writeGin(c, badRequest("Failed to read request body", CodeInvalidJSON))
			return
		}

		resp, err := h(c.Request.Context(), req)
		if err != nil {
			writeGin(c, internalError(err))
			return
		}
		writeGin(c, resp)
	}
}

func requestFromGin(c *gin.Context) (*lambda.Request, error) {
	var body []byte
	if c.Request.Body != nil {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
		body = data
	}

	query := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for key := range c.Request.Header {
		headers[key] = c.Request.Header.Get(key)
	}

	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}

	return &lambda.Request{
		RequestID:   c.GetString(middleware.RequestIDKey),
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
		PathParams:  params,
	}, nil
}

func writeGin(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	contentType := resp.Headers["Content-Type"]
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}
