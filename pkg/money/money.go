// Package money holds the currency helpers used across the dashboard:
// GST computation for order totals, INR display formatting and the fixed
// USD conversion used for imported price lists.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// usdToINRRate is the fixed conversion rate applied to USD price lists.
const usdToINRRate = 83

// gstRate is the GST fraction applied to order subtotals.
const gstRate = 0.05

// Breakdown is the amount split stored on an order at creation time.
type Breakdown struct {
	Subtotal float64
	GST      float64
	Total    float64
}

// CalculateGST splits an order subtotal into subtotal, 5% GST and total.
// Total is always subtotal + gst exactly.
func CalculateGST(subtotal float64) Breakdown {
	gst := subtotal * gstRate
	return Breakdown{
		Subtotal: subtotal,
		GST:      gst,
		Total:    subtotal + gst,
	}
}

// USDToINR converts a USD amount at the fixed rate.
func USDToINR(usd float64) float64 {
	return usd * usdToINRRate
}

// FormatINR renders an amount with the rupee sign and Indian digit grouping,
// e.g. 1234567.5 -> "₹12,34,567.50". The amount is rounded to the nearest
// paisa first, so a carry propagates into the whole part; fractional paise
// are shown only when present.
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	paise := cents % 100

	out := "₹" + groupIndian(strconv.FormatInt(whole, 10))
	if paise != 0 {
		out += fmt.Sprintf(".%02d", paise)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// groupIndian inserts commas per the Indian numbering system: the last three
// digits form one group, every two digits before that form another.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head := digits[:n-3]
	tail := digits[n-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
