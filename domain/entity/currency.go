// Package entity defines the core business entities for the calculation engine.
package entity

// Currency describes a currency used for display formatting. DecimalPlaces
// is the number of minor-unit digits (2 for USD/EUR, 0 for JPY).
type Currency struct {
	Code          string `validate:"required,len=3"`
	Name          string
	Symbol        string
	DecimalPlaces int    `validate:"gte=0,lte=4"`
}

// ExchangeRate is a stored conversion rate between two currencies. Rate is a
// fixed-point integer scaled by money.RatePrecision; Display is the
// human-readable decimal string the rate was entered as. Invariant:
// Rate == round(Display × RatePrecision).
type ExchangeRate struct {
	FromCode string `validate:"required,len=3"`
	ToCode   string `validate:"required,len=3"`
	Rate     int64  `validate:"gt=0"`
	Display  string
}
