package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/docpoint/clinic-scheduler/internal/domain/schedule"
	"github.com/docpoint/clinic-scheduler/internal/httpresp"
)

type ProviderHandler struct {
	providers domain.Providers
}

func NewProviderHandler(providers domain.Providers) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

func (h *ProviderHandler) List(c *gin.Context) {
	provs, err := h.providers.ListProviders(c.Request.Context())
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, provs)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	prov, err := h.providers.GetProvider(c.Request.Context(), id)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, prov)
}
