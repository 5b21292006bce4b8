package xlsx

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
)

func TestRenderReport(t *testing.T) {
	r := NewRenderer(time.UTC)
	out, err := r.RenderReport(context.Background(), &dto.ReportDTO{
		Sales:        decimal.NewFromInt(10000),
		Expenses:     decimal.NewFromInt(2500),
		Profit:       decimal.NewFromInt(7500),
		PartnerShare: decimal.NewFromInt(1500),
		Feed: []dto.FeedEntryDTO{
			{Type: "Sale", ID: "s1", Amount: decimal.NewFromInt(10000), Details: "20 tons of 20mm to Acme", Date: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, "Sales", rows[0][0])
	assert.Equal(t, "10000", rows[0][1])
	assert.Equal(t, []string{"Date", "Type", "Details", "Amount"}, rows[5])
	assert.Equal(t, "2026-03-01 10:00", rows[6][0])
	assert.Equal(t, "20 tons of 20mm to Acme", rows[6][2])
}

func TestRenderLogs(t *testing.T) {
	r := NewRenderer(time.UTC)
	out, err := r.RenderLogs(context.Background(), "2026-03-01", []dto.LogEntryDTO{
		{Type: "Production", ID: "p1", Details: "20 tons of 20mm", UserEmail: "operator1@example.com", Date: time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)},
		{Type: "Expense", ID: "e1", Details: "Diesel: ₹2500", UserEmail: "admin@example.com", Date: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(logsSheet)
	require.NoError(t, err)
	assert.Equal(t, "Logs for 2026-03-01", rows[0][0])
	assert.Equal(t, "operator1@example.com", rows[3][3])
	assert.Equal(t, "Expense", rows[4][1])
}
