package services

const (
	platformFeePercent = 10

	// Fixed-price virtual product used by auto-match.
	virtualSessionMinutes    = 30
	virtualSessionPriceCents = 1800
)

const discountMultiSession = "multi_session"

type Quote struct {
	BasePriceCents       int
	DiscountType         *string
	DiscountAmountCents  int
	FinalPriceCents      int
	PlatformFeePercent   int
	PlatformFeeCents     int
	TrainerEarningsCents int
}

// PriceSession prices a rate-based booking. priorSessionCount is the number
// of non-declined sessions this pair booked in the trailing 30 days; from the
// third booking on (count >= 2) a 5% multi-session discount applies.
func PriceSession(ratePerMinuteCents, durationMinutes, priorSessionCount int) Quote {
	base := ratePerMinuteCents * durationMinutes

	quote := Quote{
		BasePriceCents:     base,
		FinalPriceCents:    base,
		PlatformFeePercent: platformFeePercent,
	}

	if priorSessionCount >= 2 {
		discountType := discountMultiSession
		quote.DiscountType = &discountType
		quote.DiscountAmountCents = base * 5 / 100
		quote.FinalPriceCents = base - quote.DiscountAmountCents
	}

	quote.PlatformFeeCents = quote.FinalPriceCents * platformFeePercent / 100
	quote.TrainerEarningsCents = quote.FinalPriceCents - quote.PlatformFeeCents
	return quote
}

// PriceVirtualSession prices the fixed 30-minute virtual product. No discount
// path exists here; only the platform fee splits the 1800 cents.
func PriceVirtualSession() Quote {
	quote := Quote{
		BasePriceCents:     virtualSessionPriceCents,
		FinalPriceCents:    virtualSessionPriceCents,
		PlatformFeePercent: platformFeePercent,
	}
	quote.PlatformFeeCents = quote.FinalPriceCents * platformFeePercent / 100
	quote.TrainerEarningsCents = quote.FinalPriceCents - quote.PlatformFeeCents
	return quote
}
