package constvars

const (
	DefaultAPIBaseURL = "http://10.0.2.2:8080/api"
)

const (
	ResourceAuth        = "auth"
	ResourcePatient     = "pacientes"
	ResourceAppointment = "agendamentos"
	ResourceAlert       = "alertas"
	ResourceActivity    = "atividades"
)

const (
	EndpointAuthLogin    = "/auth/login"
	EndpointAuthRegister = "/auth/register"

	EndpointPatientByID      = "/pacientes/%d"
	EndpointPatientByUserID  = "/pacientes/usuario/%d"
	EndpointPatientAddPoints = "/pacientes/%d/pontos/%d"

	EndpointAppointments           = "/agendamentos"
	EndpointAppointmentByID        = "/agendamentos/%d"
	EndpointAppointmentsByPatient  = "/agendamentos/paciente/%d"
	EndpointAppointmentUpdateState = "/agendamentos/%d/status/%s"

	EndpointAlerts                = "/alertas"
	EndpointAlertsByPatient       = "/alertas/paciente/%d"
	EndpointAlertsUnreadByPatient = "/alertas/paciente/%d/nao-lidos"
	EndpointAlertMarkAsRead       = "/alertas/%d/marcar-como-lido"
	EndpointAlertsMarkAllAsRead   = "/alertas/paciente/%d/marcar-todos-como-lidos"

	EndpointActivities              = "/atividades"
	EndpointActivitiesByPatient     = "/atividades/paciente/%d"
	EndpointActivitiesByPatientDate = "/atividades/paciente/%d/data/%s"
	EndpointActivityMarkAsCompleted = "/atividades/%d/marcar-como-concluida"
)
