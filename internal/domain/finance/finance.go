// Package finance reglas de cálculo de la planta (servicio de dominio, sin I/O).
package finance

import "github.com/shopspring/decimal"

// PartnerShareRate participación fija de los socios sobre la utilidad (20%).
var PartnerShareRate = decimal.NewFromInt(20).Div(decimal.NewFromInt(100))

// Profit utilidad = ventas - gastos.
func Profit(sales, expenses decimal.Decimal) decimal.Decimal {
	return sales.Sub(expenses)
}

// PartnerShare 20% de la utilidad. Una pérdida se reparte igual (valor negativo).
func PartnerShare(profit decimal.Decimal) decimal.Decimal {
	return profit.Mul(PartnerShareRate).Round(2)
}

// SaleTotal total de una venta: cantidad × tarifa.
func SaleTotal(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// DispatchTotal total de un despacho: cantidad × tarifa + flete.
func DispatchTotal(quantity, rate, freight decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate).Add(freight)
}
