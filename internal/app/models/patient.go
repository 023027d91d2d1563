package models

type Patient struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"usuarioId"`
	Name      string    `json:"nome"`
	BirthDate *string   `json:"dataNascimento,omitempty"`
	Phone     *string   `json:"telefone,omitempty"`
	Address   *string   `json:"endereco,omitempty"`
	Points    int       `json:"pontos"`
	LastVisit *DateTime `json:"ultimaConsulta,omitempty"`
}
