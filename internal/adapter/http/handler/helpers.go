package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes bounds the size of a request body
const MaxBodyBytes = 1 << 20

// ErrNotJSON is returned when a request body cannot be decoded as a JSON object
var ErrNotJSON = errors.New("request must be JSON")

// BindJSONBody decodes the request body into dst.
// Empty, oversized and non-JSON bodies, values of the wrong type, and
// bodies with anything after the first JSON value yield ErrNotJSON.
func BindJSONBody(c *gin.Context, dst interface{}) error {
	if c.Request.Body == nil {
		return fmt.Errorf("%w: empty body", ErrNotJSON)
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrNotJSON)
		}
		return fmt.Errorf("%w: %v", ErrNotJSON, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrNotJSON)
	}
	return nil
}
