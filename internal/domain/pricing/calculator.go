package pricing

import "errors"

var (
	ErrNegativeAmount    = errors.New("base amount cannot be negative")
	ErrInvalidTaxPercent = errors.New("tax percent must be between 0 and 100")
)

// Coupons is the allow-list of coupon codes mapped to their discount
// percent. It is loaded once at process start (see pkg/config.PricingConfig)
// and passed in by value; the calculator holds no state of its own.
type Coupons map[string]int64

// Breakdown is the result of pricing one booking. All amounts are integer
// minor units; tax and discount round down.
type Breakdown struct {
	BaseAmount     int64  `json:"baseAmount"`
	TaxPercent     int64  `json:"taxPercent"`
	Tax            int64  `json:"tax"`
	CouponCode     string `json:"couponCode,omitempty"`
	CouponDiscount int64  `json:"couponDiscount"`
	TotalAmount    int64  `json:"totalAmount"`
	CouponApplied  bool   `json:"couponApplied"`
}

// Quote prices a booking: tax = floor(base * taxPercent / 100), added to the
// base; an allow-listed coupon then takes floor(total * percent / 100) off.
// Pure function, safe to call outside any transaction.
func Quote(baseAmount, taxPercent int64, couponCode string, coupons Coupons) (Breakdown, error) {
	if baseAmount < 0 {
		return Breakdown{}, ErrNegativeAmount
	}
	if taxPercent < 0 || taxPercent > 100 {
		return Breakdown{}, ErrInvalidTaxPercent
	}

	tax := baseAmount * taxPercent / 100
	total := baseAmount + tax

	b := Breakdown{
		BaseAmount:  baseAmount,
		TaxPercent:  taxPercent,
		Tax:         tax,
		TotalAmount: total,
	}

	if couponCode == "" {
		return b, nil
	}

	percent, ok := coupons[couponCode]
	if !ok || percent <= 0 || percent > 100 {
		// Unknown codes are ignored, not rejected; the caller sees
		// CouponApplied=false and an unchanged total.
		return b, nil
	}

	b.CouponCode = couponCode
	b.CouponDiscount = total * percent / 100
	b.TotalAmount = total - b.CouponDiscount
	b.CouponApplied = true
	return b, nil
}
