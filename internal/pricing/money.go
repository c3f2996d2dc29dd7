package pricing

import "strconv"

const currencyPrefix = "R "

// ApplyPercentOff returns floor(amount * (1 - percent/100)) using integer
// arithmetic only. Displayed prices depend on the flooring being exact.
func ApplyPercentOff(amount, percent int) int {
	n := amount * (100 - percent)
	q := n / 100
	if n%100 != 0 && n < 0 {
		q--
	}
	return q
}

// FormatCurrency renders whole units as "R 1,250". The output must not depend
// on the process locale.
func FormatCurrency(amount int) string {
	digits := strconv.Itoa(amount)
	sign := ""
	if amount < 0 {
		sign, digits = "-", digits[1:]
	}

	n := len(digits)
	if n <= 3 {
		return currencyPrefix + sign + digits
	}

	buf := make([]byte, 0, n+(n-1)/3)
	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	buf = append(buf, digits[:lead]...)
	for i := lead; i < n; i += 3 {
		buf = append(buf, ',')
		buf = append(buf, digits[i:i+3]...)
	}
	return currencyPrefix + sign + string(buf)
}
