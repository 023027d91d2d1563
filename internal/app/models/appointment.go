package models

type Appointment struct {
	ID        int64    `json:"id"`
	PatientID int64    `json:"pacienteId"`
	Date      DateTime `json:"data"`
	Type      string   `json:"tipo"`
	Notes     string   `json:"observacoes"`
	Status    string   `json:"status"`
}
