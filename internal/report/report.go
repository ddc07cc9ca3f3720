// Package report arma el reporte financiero: separa el libro de caja en
// pendientes, asignados y egresos, y acumula totales por moneda.
package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ALEJO200244346760/KBNAdmin/models"
)

// ErrAsignacionInvalida: asignar exige un destinatario concreto.
var ErrAsignacionInvalida = errors.New("report: asignadoA debe ser IGNA o JOSE")

// ValidarAsignacion rejects empty and NINGUNO before anything touches the
// database; solo IGNA y JOSE son destinatarios válidos de un ingreso.
func ValidarAsignacion(a models.Asignacion) error {
	if a == models.AsignadoIgna || a == models.AsignadoJose {
		return nil
	}
	return ErrAsignacionInvalida
}

// Particion separa los registros en tres grupos excluyentes. Todo registro
// cae en exactamente uno.
type Particion struct {
	Pendientes []models.ClaseRegistro `json:"pendientes"`
	Asignados  []models.ClaseRegistro `json:"asignados"`
	Egresos    []models.ClaseRegistro `json:"egresos"`
}

// Particionar buckets the full transaction set: EGRESO aparte, INGRESO sin
// destinatario (o NINGUNO) como pendiente, y el resto como asignado.
func Particionar(registros []models.ClaseRegistro) Particion {
	var p Particion
	for _, r := range registros {
		switch {
		case r.TipoTransaccion == models.TipoEgreso:
			p.Egresos = append(p.Egresos, r)
		case r.Pendiente():
			p.Pendientes = append(p.Pendientes, r)
		default:
			p.Asignados = append(p.Asignados, r)
		}
	}
	return p
}

// ResumenMoneda acumula los totales de una sola moneda. Nunca se convierte
// entre monedas: cada una lleva su propio balde.
type ResumenMoneda struct {
	Moneda               string  `json:"moneda"`
	IngresosBrutos       float64 `json:"totalIngresosBrutos"`
	GastosAsociados      float64 `json:"totalGastos"`
	EgresosOperacionales float64 `json:"totalEgresos"`
	SaldoNeto            float64 `json:"saldoNeto"`
	Comisiones           float64 `json:"totalComisiones"`
	AsignadoIgna         float64 `json:"totalAsignadoIgna"`
	AsignadoJose         float64 `json:"totalAsignadoJose"`
}

// Resumir aggregates the ledger per currency:
//
//	ingresosBrutos  = Σ total sobre pendientes ∪ asignados
//	gastosAsociados = Σ gastosAsociados sobre INGRESO
//	egresos         = Σ costo sobre EGRESO
//	saldoNeto       = brutos − gastos − egresos
//
// The slice comes back sorted by currency code so responses are stable.
func Resumir(registros []models.ClaseRegistro) []ResumenMoneda {
	porMoneda := make(map[string]*ResumenMoneda)
	bucket := func(moneda string) *ResumenMoneda {
		if r, ok := porMoneda[moneda]; ok {
			return r
		}
		r := &ResumenMoneda{Moneda: moneda}
		porMoneda[moneda] = r
		return r
	}

	for _, reg := range registros {
		b := bucket(reg.Moneda)
		if reg.TipoTransaccion == models.TipoEgreso {
			b.EgresosOperacionales += reg.CostoEgreso()
			continue
		}
		b.IngresosBrutos += reg.Total
		b.GastosAsociados += reg.GastosAsociados
		b.Comisiones += reg.Comision
		switch reg.AsignadoA {
		case models.AsignadoIgna:
			b.AsignadoIgna += reg.Total
		case models.AsignadoJose:
			b.AsignadoJose += reg.Total
		}
	}

	resumen := make([]ResumenMoneda, 0, len(porMoneda))
	for _, b := range porMoneda {
		b.SaldoNeto = b.IngresosBrutos - b.GastosAsociados - b.EgresosOperacionales
		resumen = append(resumen, *b)
	}
	sort.Slice(resumen, func(i, j int) bool {
		return resumen[i].Moneda < resumen[j].Moneda
	})
	return resumen
}

// EstadisticasInstructor es el resumen mensual que ve cada instructor.
type EstadisticasInstructor struct {
	Instructor    string                 `json:"instructor"`
	Mes           int                    `json:"mes"`
	Anio          int                    `json:"anio"`
	TotalGenerado float64                `json:"totalGenerado"`
	Comision      float64                `json:"comision"`
	Clases        []models.ClaseRegistro `json:"clases"`
}

// Estadisticas filters the INGRESO entries of one instructor for a given
// month and computes their 30% share.
func Estadisticas(registros []models.ClaseRegistro, instructor string, mes, anio int) EstadisticasInstructor {
	e := EstadisticasInstructor{
		Instructor: instructor,
		Mes:        mes,
		Anio:       anio,
		Clases:     []models.ClaseRegistro{},
	}
	prefijo := fmt.Sprintf("%04d-%02d", anio, mes)
	for _, r := range registros {
		if r.TipoTransaccion != models.TipoIngreso || r.Instructor != instructor {
			continue
		}
		fecha, err := time.Parse("2006-01-02", r.Fecha)
		if err != nil || fecha.Format("2006-01") != prefijo {
			continue
		}
		e.Clases = append(e.Clases, r)
		e.TotalGenerado += r.Total
	}
	e.Comision = e.TotalGenerado * models.ComisionInstructor
	return e
}
