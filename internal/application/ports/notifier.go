package ports

// Severity nivel de una notificación hacia el usuario.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier define el puerto de salida hacia el sumidero de notificaciones
// (toast/alerta en la UI). Los casos de uso solo emiten; la presentación es
// responsabilidad del adaptador. Siguiendo DIP, aplicación conoce este
// contrato, no la implementación concreta.
type Notifier interface {
	Notify(title, description string, severity Severity)
}
