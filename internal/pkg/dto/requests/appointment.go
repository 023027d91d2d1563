package requests

import "odontocare-client/internal/app/models"

type CreateAppointment struct {
	PatientID int64           `json:"pacienteId"`
	Date      models.DateTime `json:"data"`
	Type      string          `json:"tipo"`
	Notes     string          `json:"observacoes"`
	Status    string          `json:"status"`
}
