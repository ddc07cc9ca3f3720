package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ALEJO200244346760/KBNAdmin/config"
	"github.com/ALEJO200244346760/KBNAdmin/models"
)

// CrearAgendaHandler agenda una clase nueva (POST /api/agenda/crear).
// Toda cita nace PENDIENTE, sin importar qué estado mande el cliente.
func CrearAgendaHandler(c *gin.Context) {
	var agenda models.Agenda
	if err := c.ShouldBindJSON(&agenda); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var instructor models.Usuario
	if err := config.DB.First(&instructor, agenda.InstructorID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Instructor no encontrado"})
		return
	}

	agenda.ID = 0
	agenda.NombreInstructor = instructor.NombreCompleto()
	agenda.Estado = models.EstadoPendiente

	if err := config.DB.Create(&agenda).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear agenda: " + err.Error()})
		return
	}

	HubAgenda.Publicar(AvisoAgenda{Tipo: "creada", Agenda: agenda})
	c.JSON(http.StatusCreated, agenda)
}

// ListarAgendaHandler devuelve todas las citas en el orden canónico del
// monitor: pendientes, confirmadas y al final las rechazadas.
func ListarAgendaHandler(c *gin.Context) {
	var items []models.Agenda
	if err := config.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener la agenda"})
		return
	}
	models.OrdenarAgenda(items)
	if items == nil {
		items = make([]models.Agenda, 0)
	}
	c.JSON(http.StatusOK, items)
}

// ListarPorInstructorHandler filtra la agenda de un instructor.
func ListarPorInstructorHandler(c *gin.Context) {
	var items []models.Agenda
	if err := config.DB.Where("instructor_id = ?", c.Param("id")).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener la agenda"})
		return
	}
	models.OrdenarAgenda(items)
	if items == nil {
		items = make([]models.Agenda, 0)
	}
	c.JSON(http.StatusOK, items)
}

// CambiarEstadoHandler confirma o rechaza una cita (PUT
// /api/agenda/:id/estado). El body llega como texto plano y en varios
// formatos; se limpia antes de validar la transición.
func CambiarEstadoHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer el cuerpo"})
		return
	}

	nuevoEstado := models.LimpiarEstado(string(body))
	if !nuevoEstado.Valido() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Estado desconocido: " + string(nuevoEstado)})
		return
	}

	var agenda models.Agenda
	if err := config.DB.First(&agenda, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cita no encontrada"})
		return
	}

	if !agenda.Estado.PuedeTransicionar(nuevoEstado) {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("No se puede pasar de %s a %s", agenda.Estado, nuevoEstado),
		})
		return
	}

	agenda.Estado = nuevoEstado
	if err := config.DB.Save(&agenda).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el estado"})
		return
	}

	HubAgenda.Publicar(AvisoAgenda{Tipo: "estado", Agenda: agenda})
	c.JSON(http.StatusOK, gin.H{"message": "Estado actualizado a " + string(nuevoEstado)})
}

// ReasignarAgendaHandler clona una cita RECHAZADA como una cita nueva
// PENDIENTE, con el mismo u otro instructor (POST
// /api/agenda/:id/reasignar). El registro rechazado queda intacto como
// historial.
func ReasignarAgendaHandler(c *gin.Context) {
	var input struct {
		InstructorID uint `json:"instructorId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rechazada models.Agenda
	if err := config.DB.First(&rechazada, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cita no encontrada"})
		return
	}
	if !rechazada.PuedeReasignarse() {
		c.JSON(http.StatusConflict, gin.H{"error": "Solo se reasignan citas rechazadas"})
		return
	}

	instructorID := input.InstructorID
	if instructorID == 0 {
		instructorID = rechazada.InstructorID
	}
	var instructor models.Usuario
	if err := config.DB.First(&instructor, instructorID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Instructor no encontrado"})
		return
	}

	nueva := rechazada.ParaReasignar(instructorID, instructor.NombreCompleto())
	if err := config.DB.Create(&nueva).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo reasignar la cita"})
		return
	}

	HubAgenda.Publicar(AvisoAgenda{Tipo: "reasignada", Agenda: nueva})
	c.JSON(http.StatusCreated, nueva)
}
