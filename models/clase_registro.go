package models

import "time"

// TipoTransaccion distingue entradas y salidas de caja.
type TipoTransaccion string

const (
	TipoIngreso TipoTransaccion = "INGRESO"
	TipoEgreso  TipoTransaccion = "EGRESO"
)

// Asignacion marca a quién se atribuye un ingreso.
type Asignacion string

const (
	AsignadoIgna    Asignacion = "IGNA"
	AsignadoJose    Asignacion = "JOSE"
	AsignadoNinguno Asignacion = "NINGUNO" // queda para la escuela
)

// ComisionInstructor es la parte de la clase que retiene el instructor.
const ComisionInstructor = 0.30

// ClaseRegistro es un asiento del libro de caja de la escuela: una clase
// cobrada (INGRESO) o un gasto operativo (EGRESO).
type ClaseRegistro struct {
	ID                   uint            `json:"id" gorm:"primaryKey"`
	Recibo               string          `json:"recibo" gorm:"type:uuid;uniqueIndex"`
	TipoTransaccion      TipoTransaccion `json:"tipoTransaccion" gorm:"type:varchar(10);not null"`
	Fecha                string          `json:"fecha" gorm:"type:date;not null"`
	Actividad            string          `json:"actividad" gorm:"not null"`
	DescripcionActividad string          `json:"descripcionActividad" gorm:"size:500"`
	Vendedor             string          `json:"vendedor"`
	Instructor           string          `json:"instructor" gorm:"not null"`
	Detalles             string          `json:"detalles" gorm:"type:text"`
	CantidadHoras        float64         `json:"cantidadHoras"`
	TarifaPorHora        float64         `json:"tarifaPorHora" gorm:"type:numeric(12,2)"`
	Total                float64         `json:"total" gorm:"type:numeric(12,2)"`
	Moneda               string          `json:"moneda" gorm:"type:varchar(8);not null"`
	GastosAsociados      float64         `json:"gastosAsociados" gorm:"type:numeric(12,2)"`
	Comision             float64         `json:"comision" gorm:"type:numeric(12,2)"`
	FormaPago            string          `json:"formaPago"`
	DetalleFormaPago     string          `json:"detalleFormaPago"`
	AsignadoA            Asignacion      `json:"asignadoA" gorm:"type:varchar(10)"`
	Revisado             bool            `json:"revisado" gorm:"not null;default:false"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// CalcularTotal recomputes the derived total of an INGRESO: horas por
// tarifa menos gastos asociados, nunca negativo. Lo que haya mandado el
// cliente se descarta. EGRESO no tiene total derivado.
func (r *ClaseRegistro) CalcularTotal() {
	if r.TipoTransaccion != TipoIngreso {
		return
	}
	total := r.CantidadHoras*r.TarifaPorHora - r.GastosAsociados
	if total < 0 {
		total = 0
	}
	r.Total = total
}

// CostoEgreso is the amount an EGRESO subtracts from the balance:
// gastosAsociados cuando está cargado, si no el total.
func (r *ClaseRegistro) CostoEgreso() float64 {
	if r.GastosAsociados != 0 {
		return r.GastosAsociados
	}
	return r.Total
}

// Pendiente reports whether an INGRESO still needs a revenue assignment.
func (r *ClaseRegistro) Pendiente() bool {
	return r.TipoTransaccion == TipoIngreso &&
		(r.AsignadoA == "" || r.AsignadoA == AsignadoNinguno)
}
