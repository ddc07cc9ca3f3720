package models

import (
	"sort"
	"strings"
	"time"
)

// EstadoAgenda es el estado de una clase agendada.
type EstadoAgenda string

const (
	EstadoPendiente  EstadoAgenda = "PENDIENTE"
	EstadoConfirmada EstadoAgenda = "CONFIRMADA"
	EstadoRechazada  EstadoAgenda = "RECHAZADA"
)

// Valido reports whether e is one of the three known states.
func (e EstadoAgenda) Valido() bool {
	return e == EstadoPendiente || e == EstadoConfirmada || e == EstadoRechazada
}

// PuedeTransicionar reports whether the change e -> destino is legal.
// Solo PENDIENTE es mutable; CONFIRMADA y RECHAZADA son terminales.
func (e EstadoAgenda) PuedeTransicionar(destino EstadoAgenda) bool {
	return e == EstadoPendiente &&
		(destino == EstadoConfirmada || destino == EstadoRechazada)
}

// LimpiarEstado normalizes the messy plain-text bodies the front ends send
// to PUT /api/agenda/:id/estado: the raw word, a quoted word, or
// {estado:WORD}. The result still needs Valido before use.
func LimpiarEstado(body string) EstadoAgenda {
	// Primero la envoltura, después la clave: en {"estado":"X"} la clave
	// recién aparece una vez quitadas las comillas.
	limpio := strings.NewReplacer("\"", "", "{", "", "}", "").Replace(body)
	limpio = strings.ToUpper(strings.TrimSpace(limpio))
	limpio = strings.TrimSpace(strings.TrimPrefix(limpio, "ESTADO:"))
	return EstadoAgenda(limpio)
}

// Agenda es una clase agendada a la espera de confirmación del instructor.
type Agenda struct {
	ID               uint         `json:"id" gorm:"primaryKey"`
	Alumno           string       `json:"alumno" gorm:"not null"`
	Fecha            string       `json:"fecha" gorm:"type:date;not null"`
	Hora             string       `json:"hora"`
	InstructorID     uint         `json:"instructorId" gorm:"index;not null"`
	NombreInstructor string       `json:"nombreInstructor"`
	Lugar            string       `json:"lugar"`
	Tarifa           float64      `json:"tarifa" gorm:"type:numeric(12,2)"`
	Horas            float64      `json:"horas"`
	HorasPagadas     float64      `json:"horasPagadas" gorm:"type:numeric(12,2)"`
	HotelDerivacion  string       `json:"hotelDerivacion"`
	Estado           EstadoAgenda `json:"estado" gorm:"type:varchar(16);not null;default:PENDIENTE"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// PuedeReasignarse reports whether the booking admits reassignment.
// Solo las citas rechazadas: una pendiente todavía espera respuesta y
// una confirmada ya está cerrada.
func (a Agenda) PuedeReasignarse() bool {
	return a.Estado == EstadoRechazada
}

// ParaReasignar builds the new PENDIENTE booking that replaces a rejected
// one. El registro rechazado no se toca: queda como historial.
func (a Agenda) ParaReasignar(instructorID uint, nombreInstructor string) Agenda {
	return Agenda{
		Alumno:           a.Alumno,
		Fecha:            a.Fecha,
		Hora:             a.Hora,
		InstructorID:     instructorID,
		NombreInstructor: nombreInstructor,
		Lugar:            a.Lugar,
		Tarifa:           a.Tarifa,
		Horas:            a.Horas,
		HorasPagadas:     a.HorasPagadas,
		HotelDerivacion:  a.HotelDerivacion,
		Estado:           EstadoPendiente,
	}
}

// prioridadEstado define el orden canónico del monitor.
var prioridadEstado = map[EstadoAgenda]int{
	EstadoPendiente:  0,
	EstadoConfirmada: 1,
	EstadoRechazada:  2,
}

// OrdenarAgenda sorts in place: PENDIENTE first, then CONFIRMADA, then
// RECHAZADA; within a state the most recent date goes on top.
func OrdenarAgenda(items []Agenda) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := prioridadEstado[items[i].Estado], prioridadEstado[items[j].Estado]
		if pi != pj {
			return pi < pj
		}
		if items[i].Fecha != items[j].Fecha {
			return items[i].Fecha > items[j].Fecha
		}
		return items[i].Hora > items[j].Hora
	})
}
