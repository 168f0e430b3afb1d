// Package sequence allocates document numbers from a counter per
// (company, branch, kind). Numbers are monotonic and may have gaps.
package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	KindSale  = "sale"
	KindQuote = "quote"
)

type Repository interface {
	// Next increments and returns the counter. On postgres the counter row
	// stays locked until the surrounding transaction ends.
	Next(ctx context.Context, companyID, branchID, kind string) (int64, error)
	// Current returns the last allocated value, 0 when none.
	Current(ctx context.Context, companyID, branchID, kind string) (int64, error)
}

func FormatSaleNumber(n int64) string {
	return fmt.Sprintf("DTE-01-00000001-00000000-%08d", n)
}

func FormatQuoteNumber(n int64) string {
	return fmt.Sprintf("COT-%08d", n)
}

// Key identifies a counter in the memory backend.
func Key(companyID, branchID, kind string) string {
	return companyID + "/" + branchID + "/" + kind
}

// NextCode suggests the code after the highest "<prefix>-<n>" in codes,
// zero-padded to width. Codes that do not parse are ignored.
func NextCode(codes []string, prefix string, width int) string {
	var max int64
	for _, c := range codes {
		rest, ok := strings.CutPrefix(c, prefix+"-")
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%0*d", prefix, width, max+1)
}
