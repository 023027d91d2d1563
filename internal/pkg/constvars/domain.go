package constvars

const (
	UserRolePatient = "paciente"
)

const (
	AppointmentStatusScheduled = "agendado"
	AppointmentStatusConfirmed = "confirmado"
	AppointmentStatusCancelled = "cancelado"
)

const (
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorRed    = "red"
	ColorOrange = "orange"
)

const (
	RouteLogin        = "Login"
	RouteRegister     = "Cadastro"
	RouteHome         = "Funcionalidades"
	RouteAppointments = "Agendamentos"
	RouteAlerts       = "Alertas"
	RouteProfile      = "PerfilPaciente"
)

// Daily checklist. Descriptions are stored verbatim by the backend and the
// match fragments are looked up inside them, so both stay in Portuguese.
const (
	ActivityBreakfastBrushingDescription = "Escovou os dentes após o café da manhã"
	ActivityLunchBrushingDescription     = "Escovou os dentes após o almoço"
	ActivityDinnerBrushingDescription    = "Escovou os dentes após o jantar"
	ActivityCheckupBookedDescription     = "Marcou uma avaliação dental"
	ActivityCleaningDescription          = "Realizou limpeza dental"

	ActivityBreakfastBrushingMatch = "café da manhã"
	ActivityLunchBrushingMatch     = "almoço"
	ActivityDinnerBrushingMatch    = "jantar"
	ActivityCheckupBookedMatch     = "avaliação"
	ActivityCleaningMatch          = "limpeza"

	ActivityBrushingPoints      = 1
	ActivityCheckupBookedPoints = 2
	ActivityCleaningPoints      = 3
)
