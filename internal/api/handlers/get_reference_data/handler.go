package get_reference_data

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/api/handlers"
)

const (
	msgInvalidCountryID = "некорректный ID страны"
)

type Handler struct {
	referenceRepo ReferenceRepository
	logger        Logger
}

func NewHandler(referenceRepo ReferenceRepository, logger Logger) *Handler {
	return &Handler{
		referenceRepo: referenceRepo,
		logger:        logger,
	}
}

// HandleContacts GET /api/v1/contacts
func (h *Handler) HandleContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.referenceRepo.Contacts(r.Context())
	if err != nil {
		h.logger.Error("GET /contacts - Failed to list contacts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainContacts(contacts))
}

// HandleCountries GET /api/v1/countries
func (h *Handler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.referenceRepo.Countries(r.Context())
	if err != nil {
		h.logger.Error("GET /countries - Failed to list countries: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainCountries(countries))
}

// HandleDivisions GET /api/v1/countries/{countryId}/divisions
func (h *Handler) HandleDivisions(w http.ResponseWriter, r *http.Request) {
	countryID, err := strconv.ParseInt(mux.Vars(r)["countryId"], 10, 64)
	if err != nil || countryID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCountryID)
		return
	}

	divisions, err := h.referenceRepo.DivisionsByCountry(r.Context(), countryID)
	if err != nil {
		h.logger.Error("GET /countries/%d/divisions - Failed to list divisions: %v", countryID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainDivisions(divisions))
}
