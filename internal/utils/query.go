package utils

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// QueryParamInt reads a positive integer query parameter. Missing,
// non-numeric or non-positive values yield defaultValue.
func QueryParamInt(c echo.Context, name string, defaultValue int) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
