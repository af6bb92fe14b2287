package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"tonkho/internal/domain/materials"
	"tonkho/internal/infrastructure/xlsx"
)

// MaterialsHandler handles catalog endpoints and spreadsheet downloads.
type MaterialsHandler struct {
	*BaseHandler
	service *materials.Service
}

// NewMaterialsHandler creates a new catalog handler.
func NewMaterialsHandler(base *BaseHandler, service *materials.Service) *MaterialsHandler {
	return &MaterialsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /materials
func (h *MaterialsHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if items == nil {
		items = []materials.Material{}
	}
	h.OK(c, items)
}

// DownloadTemplate handles GET /download/template-import
func (h *MaterialsHandler) DownloadTemplate(c *gin.Context) {
	buf, err := xlsx.BuildImportTemplate()
	if err != nil {
		h.Error(c, err)
		return
	}
	writeAttachment(c, xlsx.TemplateFilename, buf.Bytes())
}

// DownloadMaterials handles GET /download/materials
func (h *MaterialsHandler) DownloadMaterials(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	buf, err := xlsx.BuildMaterialsExport(items)
	if err != nil {
		h.Error(c, err)
		return
	}
	writeAttachment(c, xlsx.MaterialsFilename, buf.Bytes())
}

func writeAttachment(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, xlsx.ContentType, data)
}
