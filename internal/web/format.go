package web

import "strconv"

// trimFloat prints 2 as "2" and 0.25 as "0.25"
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
