// Package tax computes Canadian sales tax by province/territory.
//
// HST provinces charge a single combined federal+provincial rate. Quebec
// charges GST + QST, three provinces charge GST + PST, and the rest charge
// the 5% federal GST only. Rates are current as of 2024.
package tax

import (
	"math"
	"strings"
)

// Province is a two-letter Canadian province/territory code.
type Province string

const (
	AB Province = "AB"
	BC Province = "BC"
	MB Province = "MB"
	NB Province = "NB"
	NL Province = "NL"
	NS Province = "NS"
	NT Province = "NT"
	NU Province = "NU"
	ON Province = "ON"
	PE Province = "PE"
	QC Province = "QC"
	SK Province = "SK"
	YT Province = "YT"
)

// DefaultProvince is used for the combined-rate estimate when the caller has
// not selected a province yet.
const DefaultProvince = ON

// GSTRate is the 5% federal rate charged in every province.
const GSTRate = 0.05

// QSTRate is Quebec's provincial rate.
const QSTRate = 0.09975

// Combined rate per province. HST provinces carry the harmonized rate,
// everything else the effective GST+PST total.
var rates = map[Province]float64{
	AB: 0.05,
	BC: 0.12,
	MB: 0.12,
	NB: 0.15,
	NL: 0.15,
	NS: 0.15,
	NT: 0.05,
	NU: 0.05,
	ON: 0.13,
	PE: 0.15,
	QC: 0.14975,
	SK: 0.11,
	YT: 0.05,
}

var hstProvinces = map[Province]bool{
	NB: true,
	NL: true,
	NS: true,
	ON: true,
	PE: true,
}

var pstRates = map[Province]float64{
	BC: 0.07,
	MB: 0.07,
	SK: 0.06,
}

// Names maps province codes to display names.
var Names = map[Province]string{
	AB: "Alberta",
	BC: "British Columbia",
	MB: "Manitoba",
	NB: "New Brunswick",
	NL: "Newfoundland and Labrador",
	NS: "Nova Scotia",
	NT: "Northwest Territories",
	NU: "Nunavut",
	ON: "Ontario",
	PE: "Prince Edward Island",
	QC: "Quebec",
	SK: "Saskatchewan",
	YT: "Yukon",
}

// Normalize upper-cases a raw province code. The result is only meaningful if
// Valid reports true for it.
func Normalize(code string) Province {
	return Province(strings.ToUpper(strings.TrimSpace(code)))
}

// Valid reports whether code is a known province/territory.
func Valid(code string) bool {
	_, ok := rates[Normalize(code)]
	return ok
}

// round applies per-component rounding. Each tax component is rounded to the
// nearest whole currency unit on its own, never as part of a sum.
func round(subtotal int64, rate float64) int64 {
	return int64(math.Round(float64(subtotal) * rate))
}

// Rate returns the combined tax rate for a province, falling back to the
// default province when the code is empty or unknown.
func Rate(code string) float64 {
	if r, ok := rates[Normalize(code)]; ok {
		return r
	}
	return rates[DefaultProvince]
}

// GST returns the federal tax on a subtotal.
func GST(subtotal int64) int64 {
	return round(subtotal, GSTRate)
}

// PST returns the provincial tax on a subtotal, or 0 for provinces without a
// separate PST.
func PST(subtotal int64, code string) int64 {
	r, ok := pstRates[Normalize(code)]
	if !ok {
		return 0
	}
	return round(subtotal, r)
}

// QST returns the Quebec provincial tax on a subtotal.
func QST(subtotal int64) int64 {
	return round(subtotal, QSTRate)
}

// HST returns the harmonized tax on a subtotal, or 0 outside HST provinces.
func HST(subtotal int64, code string) int64 {
	p := Normalize(code)
	if !hstProvinces[p] {
		return 0
	}
	return round(subtotal, rates[p])
}

// Amount returns the total tax for a subtotal in the given province. An empty
// or unknown code is estimated at the default province's rate.
func Amount(subtotal int64, code string) int64 {
	p := Normalize(code)
	switch {
	case hstProvinces[p]:
		return HST(subtotal, code)
	case p == QC:
		return GST(subtotal) + QST(subtotal)
	case pstRates[p] != 0:
		return GST(subtotal) + PST(subtotal, code)
	case rates[p] != 0:
		return GST(subtotal)
	default:
		return HST(subtotal, string(DefaultProvince))
	}
}

// Total returns subtotal plus tax for the given province.
func Total(subtotal int64, code string) int64 {
	return subtotal + Amount(subtotal, code)
}

// IsHST reports whether the province charges harmonized sales tax.
func IsHST(code string) bool {
	return hstProvinces[Normalize(code)]
}

// IsGSTPST reports whether the province charges GST plus a separate PST.
func IsGSTPST(code string) bool {
	_, ok := pstRates[Normalize(code)]
	return ok
}

// IsQuebec reports whether the province charges GST plus QST.
func IsQuebec(code string) bool {
	return Normalize(code) == QC
}

// Breakdown itemizes the tax on a subtotal. Components that do not apply in
// the province are nil; a nil pointer therefore distinguishes "not charged
// here" from a zero amount.
type Breakdown struct {
	GST int64  `json:"gst"`
	PST *int64 `json:"pst"`
	QST *int64 `json:"qst"`
	HST *int64 `json:"hst"`
}

// Sum returns the total of the applicable components.
func (b Breakdown) Sum() int64 {
	if b.HST != nil {
		return *b.HST
	}
	total := b.GST
	if b.PST != nil {
		total += *b.PST
	}
	if b.QST != nil {
		total += *b.QST
	}
	return total
}

// ComputeBreakdown itemizes tax per component for the given province. When no
// province is selected there is no authoritative breakdown, so every
// component is zero or nil; callers wanting an estimate should use Amount.
func ComputeBreakdown(subtotal int64, code string) Breakdown {
	p := Normalize(code)
	switch {
	case hstProvinces[p]:
		hst := HST(subtotal, code)
		return Breakdown{GST: 0, HST: &hst}
	case p == QC:
		qst := QST(subtotal)
		return Breakdown{GST: GST(subtotal), QST: &qst}
	case pstRates[p] != 0:
		pst := PST(subtotal, code)
		return Breakdown{GST: GST(subtotal), PST: &pst}
	case rates[p] != 0:
		return Breakdown{GST: GST(subtotal)}
	default:
		return Breakdown{}
	}
}
