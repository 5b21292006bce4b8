package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stonecrusher-api/internal/domain/finance"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDispatchTotal_IncluyeFlete(t *testing.T) {
	total := finance.DispatchTotal(d("12.5"), d("450"), d("1200"))
	assert.True(t, d("6825").Equal(total), "12.5*450+1200 = 6825, obtenido %s", total)
}

func TestSaleTotal(t *testing.T) {
	assert.True(t, d("5000").Equal(finance.SaleTotal(d("10"), d("500"))))
}

func TestPartnerShare_VeintePorCiento(t *testing.T) {
	profit := finance.Profit(d("10000"), d("2500"))
	assert.True(t, d("7500").Equal(profit))
	assert.True(t, d("1500").Equal(finance.PartnerShare(profit)))
}

func TestPartnerShare_Perdida(t *testing.T) {
	profit := finance.Profit(d("1000"), d("1500"))
	assert.True(t, d("-100").Equal(finance.PartnerShare(profit)))
}
