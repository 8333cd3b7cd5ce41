package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/opsdeck/ams-backend/internal/http/response"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
	"github.com/opsdeck/ams-backend/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	log           *logger.Logger
	exportService services.ExportService
	backupService services.BackupService
}

func NewExportHandler(log *logger.Logger, exportService services.ExportService, backupService services.BackupService) *ExportHandler {
	handlerLog := log.With("handler", "ExportHandler")
	return &ExportHandler{log: handlerLog, exportService: exportService, backupService: backupService}
}

// ExportKeka streams the flat HR-format workbook as an attachment.
func (eh *ExportHandler) ExportKeka(c *gin.Context) {
	f, err := eh.exportService.KekaWorkbook(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	eh.sendWorkbook(c, f, "KEKA_Asset_Export")
}

// ExportExcel streams the per-type workbook as an attachment.
func (eh *ExportHandler) ExportExcel(c *gin.Context) {
	f, err := eh.exportService.TypeWorkbook(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	eh.sendWorkbook(c, f, "Asset_Export")
}

func (eh *ExportHandler) ExportDB(c *gin.Context) {
	if _, err := eh.backupService.Dump(c.Request.Context()); err != nil {
		eh.log.Error("On-demand backup failed", "error", err)
		response.SetFlash(c, "danger", "Database backup failed.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	response.SetFlash(c, "success", "Database backup completed successfully.")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (eh *ExportHandler) ImportDB(c *gin.Context) {
	if _, err := eh.backupService.Restore(c.Request.Context()); err != nil {
		eh.log.Error("Database restore failed", "error", err)
		response.SetFlash(c, "danger", "Database restore failed.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	response.SetFlash(c, "success", "Database restored from the latest backup.")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (eh *ExportHandler) ManualBackup(c *gin.Context) {
	path, err := eh.backupService.Dump(c.Request.Context())
	if err != nil {
		eh.log.Error("Manual backup failed", "error", err)
		response.SetFlash(c, "danger", "Manual backup failed.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	eh.log.Info("Manual backup completed", "path", path)
	response.SetFlash(c, "success", "Manual backup completed successfully.")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// ImportExcel is not wired to an importer yet; it reports that and returns
// to the dashboard.
func (eh *ExportHandler) ImportExcel(c *gin.Context) {
	response.SetFlash(c, "info", "Excel import is not available yet.")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (eh *ExportHandler) sendWorkbook(c *gin.Context, f *excelize.File, prefix string) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	filename := fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
