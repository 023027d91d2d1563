package models

type Alert struct {
	ID          int64    `json:"id"`
	PatientID   int64    `json:"pacienteId"`
	Title       string   `json:"titulo"`
	Description string   `json:"descricao,omitempty"`
	Date        DateTime `json:"data"`
	Read        bool     `json:"lido"`
}
