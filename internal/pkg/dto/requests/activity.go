package requests

import "odontocare-client/internal/app/models"

type CreateActivity struct {
	PatientID   int64           `json:"pacienteId"`
	Description string          `json:"descricao"`
	Points      int             `json:"pontos"`
	Date        models.DateTime `json:"data"`
	Completed   bool            `json:"concluida"`
}
