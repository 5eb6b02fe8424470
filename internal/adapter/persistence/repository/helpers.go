package repository

import (
	"errors"
	"os"
	"strconv"
)

var errUnexpectedCounterShape = errors.New("counter attribute is not a number")

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseInt(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}
