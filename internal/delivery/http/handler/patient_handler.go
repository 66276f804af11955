package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"patient-api/internal/delivery/dto"
	"patient-api/internal/domain/entity"
	"patient-api/internal/usecase"
	"patient-api/pkg/response"
	"patient-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "invalid patient id")
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), patientID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "patient not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			response.ValidationError(w, vErr.Fields)
			return
		}
		response.InternalServerError(w)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/patients/%s", patient.ID))
	response.JSON(w, http.StatusCreated, patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "invalid patient id")
		return
	}

	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.patientUsecase.Update(r.Context(), patientID, &req); err != nil {
		var vErr *entity.ValidationError
		switch {
		case err == usecase.ErrPatientIDMismatch:
			response.BadRequest(w, "patient id does not match path id")
		case err == usecase.ErrPatientNotFound:
			response.NotFound(w, "patient not found")
		case errors.As(err, &vErr):
			response.ValidationError(w, vErr.Fields)
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.NoContent(w)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "invalid patient id")
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), patientID); err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "patient not found")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.NoContent(w)
}

func (h *PatientHandler) SearchPatients(w http.ResponseWriter, r *http.Request) {
	birthDate := r.URL.Query().Get("birthDate")
	if birthDate == "" {
		response.BadRequest(w, "birthDate parameter is required")
		return
	}

	patients, err := h.patientUsecase.SearchByBirthDate(r.Context(), birthDate)
	if err != nil {
		if err == usecase.ErrInvalidBirthDate {
			response.BadRequest(w, "invalid date format")
			return
		}
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, patients)
}
