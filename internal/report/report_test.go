package report

import (
	"errors"
	"math"
	"testing"

	"github.com/ALEJO200244346760/KBNAdmin/models"
)

func casiIgual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func buscarMoneda(t *testing.T, resumen []ResumenMoneda, moneda string) ResumenMoneda {
	t.Helper()
	for _, r := range resumen {
		if r.Moneda == moneda {
			return r
		}
	}
	t.Fatalf("no hay resumen para la moneda %s", moneda)
	return ResumenMoneda{}
}

func TestValidarAsignacion(t *testing.T) {
	for _, valida := range []models.Asignacion{models.AsignadoIgna, models.AsignadoJose} {
		if err := ValidarAsignacion(valida); err != nil {
			t.Errorf("ValidarAsignacion(%q) = %v", valida, err)
		}
	}
	for _, invalida := range []models.Asignacion{"", models.AsignadoNinguno, "OTRO"} {
		if err := ValidarAsignacion(invalida); !errors.Is(err, ErrAsignacionInvalida) {
			t.Errorf("ValidarAsignacion(%q) = %v, se esperaba ErrAsignacionInvalida", invalida, err)
		}
	}
}

func TestParticionarExhaustivaYDisjunta(t *testing.T) {
	registros := []models.ClaseRegistro{
		{ID: 1, TipoTransaccion: models.TipoIngreso, AsignadoA: models.AsignadoIgna},
		{ID: 2, TipoTransaccion: models.TipoIngreso, AsignadoA: ""},
		{ID: 3, TipoTransaccion: models.TipoIngreso, AsignadoA: models.AsignadoNinguno},
		{ID: 4, TipoTransaccion: models.TipoEgreso},
		{ID: 5, TipoTransaccion: models.TipoIngreso, AsignadoA: models.AsignadoJose},
		{ID: 6, TipoTransaccion: models.TipoEgreso, AsignadoA: models.AsignadoIgna}, // dato sucio: sigue siendo egreso
	}

	p := Particionar(registros)

	total := len(p.Pendientes) + len(p.Asignados) + len(p.Egresos)
	if total != len(registros) {
		t.Fatalf("la partición perdió registros: %d de %d", total, len(registros))
	}

	vistos := make(map[uint]int)
	for _, r := range p.Pendientes {
		vistos[r.ID]++
	}
	for _, r := range p.Asignados {
		vistos[r.ID]++
	}
	for _, r := range p.Egresos {
		vistos[r.ID]++
	}
	for id, veces := range vistos {
		if veces != 1 {
			t.Errorf("el registro %d cayó en %d grupos", id, veces)
		}
	}

	if len(p.Pendientes) != 2 || len(p.Asignados) != 2 || len(p.Egresos) != 2 {
		t.Errorf("tamaños: pendientes=%d asignados=%d egresos=%d",
			len(p.Pendientes), len(p.Asignados), len(p.Egresos))
	}
}

func TestResumirEscenarioBase(t *testing.T) {
	registros := []models.ClaseRegistro{
		{TipoTransaccion: models.TipoIngreso, Total: 100, AsignadoA: models.AsignadoIgna, Moneda: "USD"},
		{TipoTransaccion: models.TipoIngreso, Total: 50, AsignadoA: "", Moneda: "USD"},
		{TipoTransaccion: models.TipoEgreso, GastosAsociados: 30, Moneda: "USD"},
	}

	resumen := Resumir(registros)
	usd := buscarMoneda(t, resumen, "USD")

	if !casiIgual(usd.IngresosBrutos, 150) {
		t.Errorf("ingresos brutos = %v, se esperaba 150", usd.IngresosBrutos)
	}
	if !casiIgual(usd.SaldoNeto, 120) {
		t.Errorf("saldo neto = %v, se esperaba 120", usd.SaldoNeto)
	}
	if !casiIgual(usd.AsignadoIgna, 100) || !casiIgual(usd.AsignadoJose, 0) {
		t.Errorf("asignados: igna=%v jose=%v", usd.AsignadoIgna, usd.AsignadoJose)
	}

	if p := Particionar(registros); len(p.Pendientes) != 1 {
		t.Errorf("pendientes = %d, se esperaba 1", len(p.Pendientes))
	}
}

func TestResumirPorMonedaSinConversion(t *testing.T) {
	registros := []models.ClaseRegistro{
		{TipoTransaccion: models.TipoIngreso, Total: 200, GastosAsociados: 20, Moneda: "USD", AsignadoA: models.AsignadoJose},
		{TipoTransaccion: models.TipoIngreso, Total: 1000, Moneda: "ARS"},
		{TipoTransaccion: models.TipoEgreso, Total: 300, Moneda: "ARS"}, // sin gastos: cae al total
		{TipoTransaccion: models.TipoEgreso, GastosAsociados: 15, Total: 99, Moneda: "USD"},
	}

	resumen := Resumir(registros)
	if len(resumen) != 2 {
		t.Fatalf("monedas = %d, se esperaban 2", len(resumen))
	}
	// Orden estable por código de moneda.
	if resumen[0].Moneda != "ARS" || resumen[1].Moneda != "USD" {
		t.Errorf("orden de monedas: %s, %s", resumen[0].Moneda, resumen[1].Moneda)
	}

	ars := buscarMoneda(t, resumen, "ARS")
	if !casiIgual(ars.IngresosBrutos, 1000) || !casiIgual(ars.EgresosOperacionales, 300) || !casiIgual(ars.SaldoNeto, 700) {
		t.Errorf("ARS: %+v", ars)
	}

	usd := buscarMoneda(t, resumen, "USD")
	if !casiIgual(usd.IngresosBrutos, 200) || !casiIgual(usd.GastosAsociados, 20) {
		t.Errorf("USD: %+v", usd)
	}
	// El egreso con gastos cargados usa gastos, no el total.
	if !casiIgual(usd.EgresosOperacionales, 15) {
		t.Errorf("egresos USD = %v, se esperaba 15", usd.EgresosOperacionales)
	}
	if !casiIgual(usd.SaldoNeto, 200-20-15) {
		t.Errorf("saldo USD = %v", usd.SaldoNeto)
	}
}

func TestEstadisticasInstructor(t *testing.T) {
	registros := []models.ClaseRegistro{
		{TipoTransaccion: models.TipoIngreso, Instructor: "Igna Perez", Fecha: "2026-03-05", Total: 100},
		{TipoTransaccion: models.TipoIngreso, Instructor: "Igna Perez", Fecha: "2026-03-20", Total: 60},
		{TipoTransaccion: models.TipoIngreso, Instructor: "Igna Perez", Fecha: "2026-04-01", Total: 999}, // otro mes
		{TipoTransaccion: models.TipoIngreso, Instructor: "Jose Gomez", Fecha: "2026-03-10", Total: 500}, // otro instructor
		{TipoTransaccion: models.TipoEgreso, Instructor: "Igna Perez", Fecha: "2026-03-11", Total: 40},   // egreso no cuenta
	}

	e := Estadisticas(registros, "Igna Perez", 3, 2026)
	if len(e.Clases) != 2 {
		t.Fatalf("clases = %d, se esperaban 2", len(e.Clases))
	}
	if !casiIgual(e.TotalGenerado, 160) {
		t.Errorf("total generado = %v, se esperaba 160", e.TotalGenerado)
	}
	if !casiIgual(e.Comision, 48) {
		t.Errorf("comisión = %v, se esperaba 48 (30%% de 160)", e.Comision)
	}
}

func TestEstadisticasSinClases(t *testing.T) {
	e := Estadisticas(nil, "Nadie", 1, 2026)
	if e.TotalGenerado != 0 || e.Comision != 0 {
		t.Errorf("estadísticas vacías con totales: %+v", e)
	}
	if e.Clases == nil {
		t.Error("Clases debe ser una lista vacía, no nil, para el JSON")
	}
}
