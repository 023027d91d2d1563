package requests

// UpsertPatient is the full patient body sent with PUT. A nil BirthDate is
// sent as null.
type UpsertPatient struct {
	UserID    int64   `json:"usuarioId"`
	Name      string  `json:"nome"`
	BirthDate *string `json:"dataNascimento"`
	Phone     string  `json:"telefone"`
	Points    int     `json:"pontos"`
}

// PatientPatch carries only the fields being changed.
type PatientPatch struct {
	Name      *string `json:"nome,omitempty"`
	BirthDate *string `json:"dataNascimento,omitempty"`
	Phone     *string `json:"telefone,omitempty"`
	Address   *string `json:"endereco,omitempty"`
}

func (p PatientPatch) IsEmpty() bool {
	return p.Name == nil && p.BirthDate == nil && p.Phone == nil && p.Address == nil
}
