package bankimport

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildDedupeKey_Format(t *testing.T) {
	key := BuildDedupeKey(DedupeInput{
		Date:        "2024/5/1",
		Amount:      decimal.RequireFromString("12.5"),
		Description: "Cafe Uno - Coffee",
	})

	assert.Equal(t, "2024-05-01|12.50|cafe uno - coffee", key)
}

func TestBuildDedupeKey_DateFormatsMatch(t *testing.T) {
	a := BuildDedupeKey(DedupeInput{Date: "2024-05-01", Amount: decimal.RequireFromString("10"), Description: "x"})
	b := BuildDedupeKey(DedupeInput{Date: "2024/05/01", Amount: decimal.RequireFromString("10"), Description: "x"})

	assert.Equal(t, a, b)
}

func TestBuildDedupeKey_CaseAndWhitespaceInsensitive(t *testing.T) {
	a := BuildDedupeKey(DedupeInput{Date: "2024-05-01", Amount: decimal.RequireFromString("10"), Counterparty: "ACME  Ltd", Description: " Invoice 7"})
	b := BuildDedupeKey(DedupeInput{Date: "2024-05-01", Amount: decimal.RequireFromString("10.00"), Counterparty: "acme ltd", Description: "invoice   7 "})

	assert.Equal(t, a, b)
}

func TestBuildDedupeKey_TruncatesText(t *testing.T) {
	long := BuildDedupeKey(DedupeInput{Date: "2024-05-01", Amount: decimal.RequireFromString("1"), Description: "a very long bank description that keeps going past forty characters"})
	drift := BuildDedupeKey(DedupeInput{Date: "2024-05-01", Amount: decimal.RequireFromString("1"), Description: "a very long bank description that keeps going and then differs"})

	assert.Equal(t, long, drift)
	assert.Equal(t, "2024-05-01|1.00|a very long bank description that keeps ", long)
}

func TestBuildDedupeKey_UnparsableDateKept(t *testing.T) {
	key := BuildDedupeKey(DedupeInput{Date: "01/05", Amount: decimal.RequireFromString("1"), Description: "x"})

	assert.Equal(t, "01/05|1.00|x", key)
}

func TestBuildDedupeKey_StoredAndCandidateAgree(t *testing.T) {
	stored := BuildDedupeKey(DedupeInput{Date: "2024-05-01", Amount: decimal.RequireFromString("5.50"), Description: StoredDescription("Cafe Uno", "Coffee")})
	candidate := BuildDedupeKey(DedupeInput{Date: "2024/5/1", Amount: decimal.RequireFromString("-5.50").Abs(), Description: StoredDescription(" Cafe Uno ", "Coffee")})

	assert.Equal(t, stored, candidate)
}

func TestStoredDescription(t *testing.T) {
	assert.Equal(t, "Acme - Invoice", StoredDescription("Acme", "Invoice"))
	assert.Equal(t, "Invoice", StoredDescription("  ", "Invoice"))
	assert.Equal(t, "Acme", StoredDescription("Acme", ""))
	assert.Equal(t, "Imported transaction", StoredDescription("", " "))
}
