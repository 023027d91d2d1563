package models

type Activity struct {
	ID          int64    `json:"id"`
	PatientID   int64    `json:"pacienteId"`
	Description string   `json:"descricao"`
	Points      int      `json:"pontos"`
	Date        DateTime `json:"data"`
	Completed   bool     `json:"concluida"`
}
