package models

import "testing"

func TestLimpiarEstado(t *testing.T) {
	casos := []struct {
		body string
		want EstadoAgenda
	}{
		{"CONFIRMADA", EstadoConfirmada},
		{"confirmada", EstadoConfirmada},
		{"\"CONFIRMADA\"", EstadoConfirmada},
		{"{estado:RECHAZADA}", EstadoRechazada},
		{"{\"estado\":\"RECHAZADA\"}", EstadoRechazada},
		{"  pendiente \n", EstadoPendiente},
		{"", EstadoAgenda("")},
		{"CANCELADA", EstadoAgenda("CANCELADA")},
	}
	for _, c := range casos {
		if got := LimpiarEstado(c.body); got != c.want {
			t.Errorf("LimpiarEstado(%q) = %q, se esperaba %q", c.body, got, c.want)
		}
	}
}

func TestEstadoValido(t *testing.T) {
	for _, e := range []EstadoAgenda{EstadoPendiente, EstadoConfirmada, EstadoRechazada} {
		if !e.Valido() {
			t.Errorf("%q debería ser válido", e)
		}
	}
	for _, e := range []EstadoAgenda{"", "CANCELADA", "pendiente"} {
		if e.Valido() {
			t.Errorf("%q no debería ser válido", e)
		}
	}
}

func TestPuedeTransicionar(t *testing.T) {
	estados := []EstadoAgenda{EstadoPendiente, EstadoConfirmada, EstadoRechazada}
	for _, desde := range estados {
		for _, hacia := range estados {
			legal := desde == EstadoPendiente && hacia != EstadoPendiente
			if got := desde.PuedeTransicionar(hacia); got != legal {
				t.Errorf("%s -> %s = %v, se esperaba %v", desde, hacia, got, legal)
			}
		}
	}
}

func TestPuedeReasignarse(t *testing.T) {
	casos := map[EstadoAgenda]bool{
		EstadoRechazada:  true,
		EstadoPendiente:  false,
		EstadoConfirmada: false,
	}
	for estado, want := range casos {
		a := Agenda{Estado: estado}
		if got := a.PuedeReasignarse(); got != want {
			t.Errorf("PuedeReasignarse con %s = %v, se esperaba %v", estado, got, want)
		}
	}
}

func TestParaReasignar(t *testing.T) {
	original := Agenda{
		ID:               7,
		Alumno:           "Luz Marina",
		Fecha:            "2026-02-10",
		Hora:             "09:00",
		InstructorID:     3,
		NombreInstructor: "Igna Perez",
		Lugar:            "Playa Norte",
		Tarifa:           80,
		Horas:            2,
		HorasPagadas:     2,
		Estado:           EstadoRechazada,
	}

	nueva := original.ParaReasignar(5, "Jose Gomez")

	if nueva.ID != 0 {
		t.Errorf("la reasignación debe ser un registro nuevo, ID = %d", nueva.ID)
	}
	if nueva.Estado != EstadoPendiente {
		t.Errorf("estado de la reasignación = %q", nueva.Estado)
	}
	if nueva.InstructorID != 5 || nueva.NombreInstructor != "Jose Gomez" {
		t.Errorf("instructor de la reasignación: %d %q", nueva.InstructorID, nueva.NombreInstructor)
	}
	if nueva.Alumno != original.Alumno || nueva.Fecha != original.Fecha || nueva.Tarifa != original.Tarifa {
		t.Errorf("la reasignación perdió datos de la clase: %+v", nueva)
	}
	if original.Estado != EstadoRechazada || original.InstructorID != 3 {
		t.Errorf("el registro rechazado no debe tocarse: %+v", original)
	}
}

func TestOrdenarAgenda(t *testing.T) {
	items := []Agenda{
		{ID: 1, Estado: EstadoRechazada, Fecha: "2026-02-20"},
		{ID: 2, Estado: EstadoPendiente, Fecha: "2026-02-10", Hora: "09:00"},
		{ID: 3, Estado: EstadoConfirmada, Fecha: "2026-02-15"},
		{ID: 4, Estado: EstadoPendiente, Fecha: "2026-02-12"},
		{ID: 5, Estado: EstadoPendiente, Fecha: "2026-02-10", Hora: "17:00"},
	}

	OrdenarAgenda(items)

	orden := make([]uint, len(items))
	for i, a := range items {
		orden[i] = a.ID
	}
	esperado := []uint{4, 5, 2, 3, 1}
	for i := range esperado {
		if orden[i] != esperado[i] {
			t.Fatalf("orden = %v, se esperaba %v", orden, esperado)
		}
	}
}
