package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
)

func TestRenderReport_GeneraPDF(t *testing.T) {
	r := NewReportRenderer("Stone Crusher", time.UTC)
	report := &dto.ReportDTO{
		Sales:        decimal.NewFromInt(10000),
		Expenses:     decimal.NewFromInt(2500),
		Profit:       decimal.NewFromInt(7500),
		PartnerShare: decimal.NewFromInt(1500),
		Feed: []dto.FeedEntryDTO{
			{Type: "Sale", ID: "s1", Amount: decimal.NewFromInt(10000), Details: "20 tons of 20mm to Acme", Date: time.Now()},
			{Type: "Expense", ID: "e1", Amount: decimal.NewFromInt(2500), Details: "Diesel: ₹2500", Date: time.Now()},
		},
	}

	out, err := r.RenderReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.Extension())
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "Rs. 6825.00", rupees(decimal.RequireFromString("6825")))
	assert.Equal(t, "Rs. -100.50", rupees(decimal.RequireFromString("-100.5")))
}
