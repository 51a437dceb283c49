package sections_handler

import (
	"net/http"

	"github.com/IT-Nick/quantum-quiz/internal/domain/catalog"
	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	httpError "github.com/IT-Nick/quantum-quiz/pkg/http"
)

// SectionsResponse структура для ответа
type SectionsResponse struct {
	InitialSection string          `json:"initial_section"`
	Sections       []model.Section `json:"sections"`
}

// SectionsHandler GET /api/content/sections отдает учебный материал целиком
type SectionsHandler struct {
	catalog *catalog.Catalog
}

func NewSectionsHandler(c *catalog.Catalog) *SectionsHandler {
	return &SectionsHandler{catalog: c}
}

// ServeHTTP метод для обработки запроса
func (h *SectionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpError.JSONResponse(w, http.StatusOK, SectionsResponse{
		InitialSection: h.catalog.InitialSection,
		Sections:       h.catalog.Sections,
	})
}
