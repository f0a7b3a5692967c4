package pricing

import (
	"math"
)

// CDF is a cumulative distribution function of the standard normal distribution.
type CDF func(x float64) float64

// Inputs holds the five Black-Scholes-Merton parameters of a European option.
type Inputs struct {
	Spot   float64 `json:"S"`     // spot price of the underlying
	Strike float64 `json:"K"`     // strike price
	Rate   float64 `json:"r"`     // continuously compounded risk-free rate
	Expiry float64 `json:"T"`     // time to maturity in years
	Vol    float64 `json:"sigma"` // annualised volatility
}

// Discount returns the strike discounted to today, K·e^(−rT).
func (in Inputs) Discount() float64 {
	return in.Strike * math.Exp(-in.Rate*in.Expiry)
}

func (in Inputs) hasNaN() bool {
	return math.IsNaN(in.Spot) || math.IsNaN(in.Strike) || math.IsNaN(in.Rate) ||
		math.IsNaN(in.Expiry) || math.IsNaN(in.Vol)
}

// Quote is the pair of European call and put prices for one set of Inputs.
type Quote struct {
	Call float64 `json:"call_price"`
	Put  float64 `json:"put_price"`
}

// Pricer prices European options under Black-Scholes-Merton.
// A Pricer has no mutable state and is safe for concurrent use.
type Pricer struct {
	cdf CDF
}

// NewPricer returns a Pricer using cdf for Φ. A nil cdf selects NormCDF.
func NewPricer(cdf CDF) *Pricer {
	if cdf == nil {
		cdf = NormCDF
	}
	return &Pricer{cdf: cdf}
}

var defaultPricer = NewPricer(nil)

// Price returns the call and put prices for in.
//
// Degenerate inputs are resolved before the closed form:
//   - any NaN input: (NaN, NaN)
//   - T = 0: intrinsic payoff (max(S−K, 0), max(K−S, 0))
//   - S = 0: (0, K·e^(−rT))
//   - K = 0: (S, 0)
//   - σ = 0: discounted intrinsic (max(S−K·e^(−rT), 0), max(K·e^(−rT)−S, 0))
//
// Price does not validate signs; negative inputs yield whatever the
// formula produces, typically NaN.
func (p *Pricer) Price(in Inputs) Quote {
	S, K, r, T, sigma := in.Spot, in.Strike, in.Rate, in.Expiry, in.Vol

	if in.hasNaN() {
		return Quote{Call: math.NaN(), Put: math.NaN()}
	}

	if T == 0 {
		return Quote{Call: math.Max(S-K, 0), Put: math.Max(K-S, 0)}
	}

	df := math.Exp(-r * T)

	switch {
	case S == 0:
		return Quote{Call: 0, Put: K * df}
	case K == 0:
		return Quote{Call: S, Put: 0}
	case sigma == 0:
		return Quote{Call: math.Max(S-K*df, 0), Put: math.Max(K*df-S, 0)}
	}

	sqrtT := math.Sqrt(T)
	d1 := (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	call := S*p.cdf(d1) - K*df*p.cdf(d2)
	put := K*df*p.cdf(-d2) - S*p.cdf(-d1)

	// rounding can leave far out-of-the-money legs a hair below zero
	return Quote{Call: floor0(call), Put: floor0(put)}
}

// floor0 clamps tiny negatives to zero and leaves NaN untouched.
func floor0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// BlackScholesCallPut prices a European call and put with the default pricer.
func BlackScholesCallPut(S, K, r, T, sigma float64) (call, put float64) {
	q := defaultPricer.Price(Inputs{Spot: S, Strike: K, Rate: r, Expiry: T, Vol: sigma})
	return q.Call, q.Put
}

// NormCDF computes the cumulative distribution function of the standard normal
// distribution as Φ(x) = erfc(−x/√2)/2, which keeps relative accuracy in the
// left tail where 1+erf(x/√2) cancels.
func NormCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}
