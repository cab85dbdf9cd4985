package marketdata

import (
	"context"
	"hash/fnv"
	"log"
	"math/rand"
	"time"
)

// Timeframe is a coarse history window selected by the caller.
type Timeframe string

// Supported timeframes.
const (
	Timeframe1D Timeframe = "1d"
	Timeframe1W Timeframe = "1w"
	Timeframe1M Timeframe = "1m"
	Timeframe3M Timeframe = "3m"
	Timeframe1Y Timeframe = "1y"
)

// chartParam maps a coarse timeframe onto the chart API's (range, interval)
// vocabulary, plus the shape of the synthetic fallback series.
type chartParam struct {
	rng      string
	interval string
	points   int
	step     time.Duration
}

var chartParams = map[Timeframe]chartParam{
	Timeframe1D: {rng: "1d", interval: "5m", points: 78, step: 5 * time.Minute},
	Timeframe1W: {rng: "5d", interval: "30m", points: 65, step: 30 * time.Minute},
	Timeframe1M: {rng: "1mo", interval: "1d", points: 22, step: 24 * time.Hour},
	Timeframe3M: {rng: "3mo", interval: "1d", points: 65, step: 24 * time.Hour},
	Timeframe1Y: {rng: "1y", interval: "1wk", points: 52, step: 7 * 24 * time.Hour},
}

// ValidTimeframe reports whether tf is a supported timeframe value.
func ValidTimeframe(tf Timeframe) bool {
	_, ok := chartParams[tf]
	return ok
}

// History returns a historical price series for a symbol over the given
// timeframe. On any fetch failure, including unsupported symbols such as
// crypto identifiers the chart API does not know, it falls back to a
// locally synthesized series so callers never receive an empty chart.
func (g *Gateway) History(ctx context.Context, symbol string, tf Timeframe) []PricePoint {
	param, ok := chartParams[tf]
	if !ok {
		param = chartParams[Timeframe1M]
	}

	var points []PricePoint
	err := g.throttle.Do(ctx, func(ctx context.Context) error {
		chart, err := g.equity.QueryChart(ctx, symbol, param.rng, param.interval)
		if err != nil {
			return err
		}
		points = make([]PricePoint, len(chart.Points))
		for i, p := range chart.Points {
			points[i] = PricePoint{Date: p.Date, Price: p.Price, Volume: p.Volume}
		}
		return nil
	})
	if err != nil {
		log.Printf("marketdata: history for %s failed, synthesizing: %v", symbol, err)
		return SyntheticHistory(symbol, tf, g.now())
	}
	if len(points) == 0 {
		// An upstream response with no usable points counts as a failure.
		return SyntheticHistory(symbol, tf, g.now())
	}

	return points
}

// SyntheticHistory generates a deterministic pseudo-random walk for a symbol.
// The walk is seeded from the symbol, so repeated calls for the same symbol
// and timeframe produce the same series; the base price is also derived from
// the symbol so different symbols chart at different levels.
func SyntheticHistory(symbol string, tf Timeframe, now time.Time) []PricePoint {
	param, ok := chartParams[tf]
	if !ok {
		param = chartParams[Timeframe1M]
	}

	hash := fnv.New64a()
	hash.Write([]byte(symbol))
	seed := int64(hash.Sum64())

	rng := rand.New(rand.NewSource(seed))

	const volatility = 0.02
	basePrice := 20 + float64((seed%977+977)%977) // 20..996

	points := make([]PricePoint, param.points)
	price := basePrice
	start := now.Add(-time.Duration(param.points-1) * param.step)

	for i := range points {
		// Symmetric random step scaled by the volatility constant.
		price *= 1 + (rng.Float64()*2-1)*volatility
		if price < 0.01 {
			price = 0.01
		}
		points[i] = PricePoint{
			Date:   start.Add(time.Duration(i) * param.step),
			Price:  price,
			Volume: int64(100000 + rng.Intn(900000)),
		}
	}

	return points
}
