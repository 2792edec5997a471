package handler

import (
	"fmt"
	"strconv"
)

// parseIdParam parses an int64 path parameter and returns a meaningful error
func parseIdParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}
