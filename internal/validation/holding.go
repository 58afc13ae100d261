package validation

import (
	"fmt"
	"strings"

	"github.com/mhazelzet/stock-tracker-backend/internal/api/request"
)

// maxTickerLength bounds ticker symbols; the longest real-world symbols
// (exchange-suffixed) stay under this.
const maxTickerLength = 12

// ValidateReplaceHoldings checks an edited holdings table. Ticker is
// required per row; quantities and prices must not be negative. A zero
// shares or buy price is allowed (it reads as "not recorded"), but a target
// price, when given, must be positive.
func ValidateReplaceHoldings(req request.ReplaceHoldingsRequest) error {
	errors := make(map[string]string)

	for i, row := range req.Holdings {
		field := func(name string) string { return fmt.Sprintf("holdings[%d].%s", i, name) }

		ticker := strings.TrimSpace(row.Ticker)
		if ticker == "" {
			errors[field("ticker")] = "ticker is required"
		} else if len(ticker) > maxTickerLength {
			errors[field("ticker")] = fmt.Sprintf("ticker must be %d characters or less", maxTickerLength)
		}

		if row.Shares < 0 {
			errors[field("shares")] = "shares cannot be negative"
		}
		if row.BuyPrice < 0 {
			errors[field("buyPrice")] = "buy price cannot be negative"
		}
		if row.TargetPrice != nil && *row.TargetPrice <= 0 {
			errors[field("targetPrice")] = "target price must be positive when set"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
