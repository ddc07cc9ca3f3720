package models

import "testing"

func TestCalcularTotal(t *testing.T) {
	casos := []struct {
		nombre string
		reg    ClaseRegistro
		want   float64
	}{
		{
			"horas por tarifa menos gastos",
			ClaseRegistro{TipoTransaccion: TipoIngreso, CantidadHoras: 2, TarifaPorHora: 60, GastosAsociados: 20},
			100,
		},
		{
			"nunca negativo",
			ClaseRegistro{TipoTransaccion: TipoIngreso, CantidadHoras: 1, TarifaPorHora: 10, GastosAsociados: 50},
			0,
		},
		{
			"descarta el total que mandó el cliente",
			ClaseRegistro{TipoTransaccion: TipoIngreso, CantidadHoras: 3, TarifaPorHora: 40, Total: 9999},
			120,
		},
	}
	for _, c := range casos {
		c.reg.CalcularTotal()
		if c.reg.Total != c.want {
			t.Errorf("%s: total = %v, se esperaba %v", c.nombre, c.reg.Total, c.want)
		}
	}

	egreso := ClaseRegistro{TipoTransaccion: TipoEgreso, CantidadHoras: 2, TarifaPorHora: 60, Total: 35}
	egreso.CalcularTotal()
	if egreso.Total != 35 {
		t.Errorf("EGRESO no tiene total derivado, quedó %v", egreso.Total)
	}
}

func TestCostoEgreso(t *testing.T) {
	conGastos := ClaseRegistro{TipoTransaccion: TipoEgreso, GastosAsociados: 30, Total: 99}
	if got := conGastos.CostoEgreso(); got != 30 {
		t.Errorf("con gastos cargados = %v, se esperaba 30", got)
	}
	sinGastos := ClaseRegistro{TipoTransaccion: TipoEgreso, Total: 99}
	if got := sinGastos.CostoEgreso(); got != 99 {
		t.Errorf("sin gastos cae al total = %v, se esperaba 99", got)
	}
}

func TestPendiente(t *testing.T) {
	casos := []struct {
		reg  ClaseRegistro
		want bool
	}{
		{ClaseRegistro{TipoTransaccion: TipoIngreso}, true},
		{ClaseRegistro{TipoTransaccion: TipoIngreso, AsignadoA: AsignadoNinguno}, true},
		{ClaseRegistro{TipoTransaccion: TipoIngreso, AsignadoA: AsignadoIgna}, false},
		{ClaseRegistro{TipoTransaccion: TipoIngreso, AsignadoA: AsignadoJose}, false},
		{ClaseRegistro{TipoTransaccion: TipoEgreso}, false},
	}
	for _, c := range casos {
		if got := c.reg.Pendiente(); got != c.want {
			t.Errorf("Pendiente(%s, %q) = %v, se esperaba %v",
				c.reg.TipoTransaccion, c.reg.AsignadoA, got, c.want)
		}
	}
}
