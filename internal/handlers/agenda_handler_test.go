package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func routerAgenda() *gin.Engine {
	r := gin.New()
	r.PUT("/api/agenda/:id/estado", CambiarEstadoHandler)
	r.POST("/api/agenda/:id/reasignar", ReasignarAgendaHandler)
	return r
}

func TestCambiarEstadoDesconocido(t *testing.T) {
	r := routerAgenda()
	// Un estado que la limpieza no reconoce se corta antes de buscar la cita.
	for _, body := range []string{"CANCELADA", `{"estado":"CUALQUIERA"}`, ""} {
		req := httptest.NewRequest(http.MethodPut, "/api/agenda/5/estado", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, se esperaba 400", body, w.Code)
		}
	}
}

func TestReasignarBodyInvalido(t *testing.T) {
	r := routerAgenda()
	req := httptest.NewRequest(http.MethodPost, "/api/agenda/5/reasignar",
		strings.NewReader(`{"instructorId":"no-es-un-numero"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, se esperaba 400", w.Code)
	}
}
