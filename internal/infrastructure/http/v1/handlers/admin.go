package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"tonkho/internal/domain/ledger"
	"tonkho/internal/infrastructure/http/v1/dto"
	"tonkho/pkg/logger"
)

// AdminHandler handles the guarded destructive reset operation.
type AdminHandler struct {
	*BaseHandler
	ledger   *ledger.Service
	adminKey string
}

// NewAdminHandler creates a new admin handler. The key comes from
// configuration, never from source.
func NewAdminHandler(base *BaseHandler, ledgerService *ledger.Service, adminKey string) *AdminHandler {
	return &AdminHandler{
		BaseHandler: base,
		ledger:      ledgerService,
		adminKey:    adminKey,
	}
}

// ClearData handles POST /admin/clear-data. On key mismatch nothing is
// mutated; on match every ledger row is deleted, catalog untouched.
func (h *AdminHandler) ClearData(c *gin.Context) {
	var req dto.AdminClearRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Key), []byte(h.adminKey)) != 1 {
		logger.Warn(c.Request.Context(), "admin reset rejected: bad key")
		c.JSON(http.StatusUnauthorized, dto.AdminClearResponse{
			Status:  "error",
			Message: "invalid admin key",
		})
		return
	}

	if _, err := h.ledger.ClearAll(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.AdminClearResponse{
		Status:  "ok",
		Message: "all stock movements deleted",
	})
}
