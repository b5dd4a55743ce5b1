package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// stayPrice bills whole elapsed 24h periods at the nightly rate, with a
// one-night minimum: any stay under a full day, including one spanning a
// calendar-day boundary, still charges one night.
func stayPrice(nightlyPrice decimal.Decimal, checkIn, checkOut time.Time) decimal.Decimal {
	nights := int64(checkOut.Sub(checkIn) / (24 * time.Hour))
	if nights == 0 {
		nights = 1
	}
	return nightlyPrice.Mul(decimal.NewFromInt(nights)).Round(2)
}
