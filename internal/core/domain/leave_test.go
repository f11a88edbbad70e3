package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodFor(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		label string
	}{
		{"before cutover", time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC), "2024-02-21_2024-03-20"},
		{"after cutover", time.Date(2024, time.March, 25, 9, 0, 0, 0, time.UTC), "2024-03-21_2024-04-20"},
		{"on cutover", time.Date(2024, time.March, 21, 0, 0, 0, 0, time.UTC), "2024-03-21_2024-04-20"},
		{"last day", time.Date(2024, time.March, 20, 23, 59, 0, 0, time.UTC), "2024-02-21_2024-03-20"},
		{"january wraps to december", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), "2023-12-21_2024-01-20"},
		{"december wraps to january", time.Date(2024, time.December, 28, 0, 0, 0, 0, time.UTC), "2024-12-21_2025-01-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, domain.PeriodFor(tt.today).Label())
		})
	}
}

func TestAccountingPeriod_Contains(t *testing.T) {
	p := domain.PeriodFor(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))

	assert.True(t, p.Contains(time.Date(2024, time.February, 21, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, time.March, 20, 18, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.March, 21, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)))
}

func TestLeaveBalance_GetWith(t *testing.T) {
	b := domain.DefaultLeaveBalance()
	assert.Equal(t, domain.LeaveBalance{Annual: 21, Casual: 7, Sick: 15, Exam: 0}, b)

	for _, p := range domain.AllPools {
		_, err := b.Get(p)
		require.NoError(t, err, p)
	}

	updated, err := b.With(domain.PoolSick, 3)
	require.NoError(t, err)
	days, err := updated.Get(domain.PoolSick)
	require.NoError(t, err)
	assert.Equal(t, 3, days)
	assert.Equal(t, 15, b.Sick, "With must not mutate the receiver")

	_, err = b.Get(domain.Pool("maternity"))
	assert.Error(t, err)
	_, err = b.With(domain.Pool("maternity"), 1)
	assert.Error(t, err)
}

func TestLeaveBalance_NonNegative(t *testing.T) {
	assert.True(t, domain.LeaveBalance{}.NonNegative())
	assert.False(t, domain.LeaveBalance{Casual: -1}.NonNegative())
}
