package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ALEJO200244346760/KBNAdmin/config"
	"github.com/ALEJO200244346760/KBNAdmin/internal/report"
	"github.com/ALEJO200244346760/KBNAdmin/models"
)

const formatoFecha = "2006-01-02"

// prepararRegistro valida y normaliza un asiento que llegó del cliente:
// recalcula el total, vacía los campos exclusivos del admin y estampa el
// recibo. Después de esto, el registro está listo para persistirse.
func prepararRegistro(registro *models.ClaseRegistro) error {
	if registro.TipoTransaccion != models.TipoIngreso && registro.TipoTransaccion != models.TipoEgreso {
		return errors.New("tipoTransaccion debe ser INGRESO o EGRESO")
	}
	if registro.Instructor == "" {
		return errors.New("El instructor es obligatorio")
	}
	if registro.Fecha == "" {
		registro.Fecha = time.Now().Format(formatoFecha)
	} else if _, err := time.Parse(formatoFecha, registro.Fecha); err != nil {
		return errors.New("Fecha inválida, se espera AAAA-MM-DD")
	}

	registro.CalcularTotal()

	// La asignación de ingresos es una decisión posterior del admin.
	registro.ID = 0
	registro.AsignadoA = ""
	registro.Revisado = false
	registro.Recibo = uuid.NewString()
	return nil
}

// GuardarClaseHandler registra un asiento nuevo en el libro de caja
// (POST /api/clases/guardar). El total de un INGRESO se recalcula siempre
// del lado del servidor y los campos exclusivos del admin se vacían.
func GuardarClaseHandler(c *gin.Context) {
	var registro models.ClaseRegistro
	if err := c.ShouldBindJSON(&registro); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := prepararRegistro(&registro); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&registro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el registro"})
		return
	}
	c.JSON(http.StatusCreated, registro)
}

// ListarClasesHandler lista el libro de caja, paginado salvo all=true.
func ListarClasesHandler(c *gin.Context) {
	query := config.DB.Model(&models.ClaseRegistro{}).Order("fecha desc, id desc")

	var registros []models.ClaseRegistro
	if c.Query("all") == "true" {
		if err := query.Find(&registros).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los registros"})
			return
		}
		if registros == nil {
			registros = make([]models.ClaseRegistro, 0)
		}
		c.JSON(http.StatusOK, registros)
		return
	}

	var totalRows int64
	if err := config.DB.Model(&models.ClaseRegistro{}).Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los registros"})
		return
	}

	if err := query.Scopes(Paginate(c)).Find(&registros).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los registros"})
		return
	}
	if registros == nil {
		registros = make([]models.ClaseRegistro, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, registros, totalRows))
}

// AsignarIngresoHandler atribuye un ingreso a IGNA o JOSE (PUT
// /api/clases/asignar/:id). Un destinatario vacío o NINGUNO se rechaza
// antes de tocar la base.
func AsignarIngresoHandler(c *gin.Context) {
	var input struct {
		AsignadoA models.Asignacion `json:"asignadoA"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := report.ValidarAsignacion(input.AsignadoA); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var registro models.ClaseRegistro
	if err := config.DB.First(&registro, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro no encontrado"})
		return
	}
	if registro.TipoTransaccion != models.TipoIngreso {
		c.JSON(http.StatusConflict, gin.H{"error": "Solo los ingresos se pueden asignar"})
		return
	}

	registro.AsignadoA = input.AsignadoA
	registro.Revisado = true
	if err := config.DB.Save(&registro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar la asignación"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asignación actualizada correctamente"})
}

// rangoReporte valida fechaInicio/fechaFin y trae los registros del rango.
func rangoReporte(c *gin.Context) ([]models.ClaseRegistro, string, string, error) {
	inicio := c.Query("fechaInicio")
	fin := c.Query("fechaFin")
	if _, err := time.Parse(formatoFecha, inicio); err != nil {
		return nil, "", "", errors.New("fechaInicio inválida, se espera AAAA-MM-DD")
	}
	if _, err := time.Parse(formatoFecha, fin); err != nil {
		return nil, "", "", errors.New("fechaFin inválida, se espera AAAA-MM-DD")
	}

	var registros []models.ClaseRegistro
	err := config.DB.
		Where("fecha BETWEEN ? AND ?", inicio, fin).
		Order("fecha asc, id asc").
		Find(&registros).Error
	if err != nil {
		return nil, "", "", errors.New("no se pudieron obtener los registros del rango")
	}
	return registros, inicio, fin, nil
}

// ReporteHandler arma el reporte financiero de un rango de fechas:
// totales por moneda más los tres grupos (pendientes, asignados, egresos).
func ReporteHandler(c *gin.Context) {
	registros, inicio, fin, err := rangoReporte(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	particion := report.Particionar(registros)
	c.JSON(http.StatusOK, gin.H{
		"fechaInicio":      inicio,
		"fechaFin":         fin,
		"resumenPorMoneda": report.Resumir(registros),
		"pendientes":       particion.Pendientes,
		"asignados":        particion.Asignados,
		"egresos":          particion.Egresos,
	})
}

// ExportarReporteHandler baja el libro del rango como planilla xlsx.
func ExportarReporteHandler(c *gin.Context) {
	registros, _, _, err := rangoReporte(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f := excelize.NewFile()
	sheetName := "Libro de caja"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Recibo", "Fecha", "Tipo", "Actividad", "Instructor", "Detalles",
		"Horas", "Tarifa", "Total", "Moneda", "Gastos", "Comisión",
		"Forma de Pago", "Asignado a",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range registros {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Recibo)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Fecha)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), string(r.TipoTransaccion))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Actividad)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Instructor)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Detalles)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.CantidadHoras)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.TarifaPorHora)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), r.Total)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), r.Moneda)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), r.GastosAsociados)
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), r.Comision)
		f.SetCellValue(sheetName, fmt.Sprintf("M%d", row), r.FormaPago)
		f.SetCellValue(sheetName, fmt.Sprintf("N%d", row), string(r.AsignadoA))
	}

	fileName := fmt.Sprintf("reporte_clases_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo escribir la planilla"})
	}
}

// EstadisticasHandler es el resumen mensual de un instructor: total
// generado y su 30% (GET /api/clases/estadisticas?instructor&mes&anio).
func EstadisticasHandler(c *gin.Context) {
	instructor := c.Query("instructor")
	if instructor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El instructor es obligatorio"})
		return
	}

	var mes, anio int
	if _, err := fmt.Sscanf(c.Query("mes"), "%d", &mes); err != nil || mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mes inválido"})
		return
	}
	if _, err := fmt.Sscanf(c.Query("anio"), "%d", &anio); err != nil || anio < 2000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Año inválido"})
		return
	}

	desde := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	hasta := desde.AddDate(0, 1, 0)

	var registros []models.ClaseRegistro
	err := config.DB.
		Where("instructor = ? AND tipo_transaccion = ? AND fecha >= ? AND fecha < ?",
			instructor, models.TipoIngreso,
			desde.Format(formatoFecha), hasta.Format(formatoFecha)).
		Find(&registros).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener las clases"})
		return
	}

	c.JSON(http.StatusOK, report.Estadisticas(registros, instructor, mes, anio))
}
