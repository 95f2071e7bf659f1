package stubserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wlabs/patient-console/internal/patient"
)

// Verbatim rejection texts of the production service.
const (
	msgDuplicatePatient   = "A patient with the same first name, last name, and date of birth already exists."
	msgDuplicateOnUpdate  = "An update cannot result in a duplicate patient record (same name and DOB)."
	msgDuplicateCaregiver = "A caregiver with these exact details already exists for this patient."
)

type Handler struct {
	store  *Store
	logger zerolog.Logger
}

func NewHandler(store *Store, logger zerolog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/search", h.SearchPatients)
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients/:id", h.GetPatient)
	api.PUT("/patients/:id", h.UpdatePatient)
	api.DELETE("/patients/:id", h.DeletePatient)
}

func (h *Handler) SearchPatients(c echo.Context) error {
	term := c.QueryParam("term")
	results := h.store.Search(term)
	h.logger.Info().Str("term", term).Int("count", len(results)).Msg("patient search")
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p patient.Patient
	if err := c.Bind(&p); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if errs := validatePatient(p, time.Now()); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if h.store.HasDuplicate(p.FirstName, p.LastName, p.DateOfBirth, "") {
		return c.String(http.StatusBadRequest, msgDuplicatePatient)
	}
	if hasDuplicateCaregivers(p.Caregivers) {
		return c.String(http.StatusBadRequest, msgDuplicateCaregiver)
	}
	created := h.store.Create(p)
	h.logger.Info().Str("patient_id", created.ID).Msg("patient created")
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id := c.Param("id")
	p, ok := h.store.Get(id)
	if !ok {
		return c.String(http.StatusNotFound, "Patient not found with id: "+id)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id := c.Param("id")
	var p patient.Patient
	if err := c.Bind(&p); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if _, ok := h.store.Get(id); !ok {
		return c.String(http.StatusNotFound, "Patient not found with id: "+id)
	}
	if errs := validatePatient(p, time.Now()); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if h.store.HasDuplicate(p.FirstName, p.LastName, p.DateOfBirth, id) {
		return c.String(http.StatusBadRequest, msgDuplicateOnUpdate)
	}
	if hasDuplicateCaregivers(p.Caregivers) {
		return c.String(http.StatusBadRequest, msgDuplicateCaregiver)
	}
	updated, _ := h.store.Update(id, p)
	h.logger.Info().Str("patient_id", id).Msg("patient updated")
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id := c.Param("id")
	if !h.store.Delete(id) {
		return c.String(http.StatusNotFound, "Patient not found with id: "+id)
	}
	h.logger.Info().Str("patient_id", id).Msg("patient deleted")
	return c.NoContent(http.StatusNoContent)
}
