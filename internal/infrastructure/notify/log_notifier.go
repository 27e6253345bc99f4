// Package notify adapta el puerto de notificaciones al logger estructurado.
// En la aplicación original el sumidero era el toast de la UI; aquí cada
// notificación se emite como evento de log con su severidad.
package notify

import (
	"github.com/tu-usuario/invoice-studio/internal/application/ports"
	"github.com/tu-usuario/invoice-studio/pkg/logger"
)

// Asegura que LogNotifier implementa ports.Notifier.
var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier sumidero de notificaciones sobre zerolog.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el sumidero.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify emite la notificación como evento de log según su severidad.
func (n *LogNotifier) Notify(title, description string, severity ports.Severity) {
	ev := n.log.Info()
	switch severity {
	case ports.SeverityError:
		ev = n.log.Warn()
	case ports.SeveritySuccess:
		ev = n.log.Info()
	}
	ev.Str("title", title).
		Str("severity", string(severity)).
		Msg(description)
}
