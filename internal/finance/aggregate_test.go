package finance

import (
	"testing"

	"finance-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	Client string
	Amount any
}

func TestAggregateTopN(t *testing.T) {
	records := []fakeRecord{
		{Client: "A", Amount: 300.0},
		{Client: "B", Amount: 500.0},
		{Client: "A", Amount: 100.0},
	}

	totals := Aggregate(records,
		func(r fakeRecord) string { return r.Client },
		func(r fakeRecord) any { return r.Amount })

	assert.Equal(t, 400.0, totals.Get("A"))
	assert.Equal(t, 500.0, totals.Get("B"))
	assert.Equal(t, []string{"A", "B"}, totals.Keys())

	top := TopN(totals, 2, func(k string) string { return k })
	require.Len(t, top, 2)
	assert.Equal(t, RankedEntry{Label: "B", Value: 500}, top[0])
	assert.Equal(t, RankedEntry{Label: "A", Value: 400}, top[1])
}

func TestTopNTiesKeepEncounterOrder(t *testing.T) {
	records := []fakeRecord{
		{Client: "first", Amount: 100.0},
		{Client: "second", Amount: 100.0},
		{Client: "third", Amount: 100.0},
	}
	totals := Aggregate(records,
		func(r fakeRecord) string { return r.Client },
		func(r fakeRecord) any { return r.Amount })

	top := TopN(totals, 3, func(k string) string { return k })
	assert.Equal(t, "first", top[0].Label)
	assert.Equal(t, "second", top[1].Label)
	assert.Equal(t, "third", top[2].Label)
}

func TestAggregateCoercesValues(t *testing.T) {
	records := []fakeRecord{
		{Client: "A", Amount: "150"},
		{Client: "A", Amount: nil},
		{Client: "A", Amount: "junk"},
	}
	totals := Aggregate(records,
		func(r fakeRecord) string { return r.Client },
		func(r fakeRecord) any { return r.Amount })
	assert.Equal(t, 150.0, totals.Get("A"))
}

// A record listing the same employee twice credits that employee twice.
// Duplicate entries are kept as-is, so the aggregate double-counts.
func TestAggregateDuplicateEmployeeDoubleCounts(t *testing.T) {
	shares := []models.EmployeeShare{
		{EmployeeID: 1, PayoutType: models.PayoutTypePercent, PayoutAmount: 50},
		{EmployeeID: 1, PayoutType: models.PayoutTypePercent, PayoutAmount: 50},
	}
	recordProfit := 500.0

	type attribution struct {
		employeeID uint
		profit     float64
	}
	attributions := make([]attribution, 0, len(shares))
	for _, s := range shares {
		attributions = append(attributions, attribution{s.EmployeeID, recordProfit})
	}

	totals := Aggregate(attributions,
		func(a attribution) uint { return a.employeeID },
		func(a attribution) any { return a.profit })

	assert.Equal(t, 1000.0, totals.Get(uint(1)))

	top := TopN(totals, 5, func(id uint) string { return "Alice" })
	require.Len(t, top, 1)
	assert.Equal(t, 1000.0, top[0].Value)
}

func TestTopNCapsResult(t *testing.T) {
	records := make([]fakeRecord, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, fakeRecord{Client: string(rune('a' + i)), Amount: float64(i)})
	}
	totals := Aggregate(records,
		func(r fakeRecord) string { return r.Client },
		func(r fakeRecord) any { return r.Amount })

	top := TopN(totals, 8, func(k string) string { return k })
	assert.Len(t, top, 8)
	assert.Equal(t, 9.0, top[0].Value)
}
