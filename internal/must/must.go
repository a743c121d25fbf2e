package must

import (
	"log/slog"
	"os"
	"strconv"
)

// NoError aborts the program on err. Reserved for init-time loading of
// embedded datasets, where an error means the binary itself is broken.
func NoError(err error) {
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func CastFloat64(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	NoError(err)
	return f
}
