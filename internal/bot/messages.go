package bot

import (
	"fmt"
	"strings"

	"github.com/julenag/bot/internal/domain/models"
	"github.com/julenag/bot/internal/utils"
)

// User-facing texts. The bot speaks Spanish; wording is kept stable because
// users screenshot and share these messages.
const (
	msgWelcome = "¡Bienvenido al Bot de Notificaciones!\n" +
		"Este bot te avisará tan pronto como los billetes para tu viaje estén disponibles.\n\n" +
		"🔹 Usa /set para configurar los detalles de tu viaje (origen, destino y fecha).\n" +
		"🔹 Usa /view para ver todas tus solicitudes pendientes.\n" +
		"🔹 Usa /delete para eliminar las solicitudes que ya no te interesen."

	msgAskOrigin      = "Por favor, introduce el origen:"
	msgAskDestination = "Origen guardado. Ahora, introduce el destino:"
	msgAskDate        = "Destino guardado. Introduce la fecha en formato dd/mm/aaaa:"

	msgDateInvalid = "❌ Fecha inválida. Introduce una fecha en formato *dd/mm/aaaa*:"
	msgDatePast    = "⚠️ La fecha ingresada ya ha pasado. Introduce una fecha futura en formato dd/mm/aaaa:"
	msgSaved       = "✅ ¡Datos del viaje guardados correctamente! Cuando los billetes estén disponibles para la venta te notificaré."
	msgSaveError   = "❌ Error al guardar los datos de viaje. Por favor, intenta nuevamente."

	msgNoRequests         = "No tienes solicitudes pendientes."
	msgNoRequestsToDelete = "No tienes solicitudes para eliminar."
	msgListHeader         = "📋 Solicitudes pendientes:"
	msgDeleteHeader       = "🗑 Selecciona el número de la solicitud que deseas eliminar:"

	msgDeleted      = "✅ Solicitud eliminada correctamente."
	msgInvalidIndex = "❌ Número de solicitud inválido. Inténtalo de nuevo."
	msgNotANumber   = "⚠️ Por favor, introduce un número válido."

	msgCancelled    = "❌ Operación cancelada."
	msgGenericError = "❌ Ha ocurrido un error. Por favor, inténtalo de nuevo más tarde."
)

// formatListing renders the 1-indexed enumeration used by both /view and
// the /delete selection prompt.
func formatListing(header string, reqs []models.TripRequest) string {
	lines := make([]string, 0, len(reqs)+1)
	lines = append(lines, header)
	for i, req := range reqs {
		lines = append(lines, fmt.Sprintf("%d. Origen: %s → Destino: %s | Fecha: %s",
			i+1, req.Origin, req.Destination, utils.FormatTravelDate(req.TravelDate)))
	}
	return strings.Join(lines, "\n")
}
