package geofence

import (
	"fmt"

	"school-security-backend/internal/model"
)

// buildAlert shapes an alert-triggering event into the outward notification
// payload.
func buildAlert(ev model.Event, zone model.Zone) model.Alert {
	return model.Alert{
		ID:        ev.ID,
		Title:     alertTitle(ev, zone),
		Message:   alertMessage(ev, zone),
		Priority:  zone.AlertSettings.Priority,
		ZoneID:    zone.ID,
		Zone:      zone.Name,
		User:      ev.UserName,
		Location:  ev.Location.Name,
		Timestamp: ev.Timestamp,
		RiskLevel: zone.RiskLevel,
	}
}

func alertTitle(ev model.Event, zone model.Zone) string {
	switch ev.EventType {
	case model.EventUnauthorized:
		return fmt.Sprintf("Acceso No Autorizado - %s", zone.Name)
	case model.EventEntry:
		return fmt.Sprintf("Entrada a Zona de Riesgo - %s", zone.Name)
	case model.EventExit:
		return fmt.Sprintf("Salida de Zona - %s", zone.Name)
	case model.EventDwellExceeded:
		return fmt.Sprintf("Tiempo Excedido en Zona - %s", zone.Name)
	default:
		return fmt.Sprintf("Evento de Geofencing - %s", zone.Name)
	}
}

func alertMessage(ev model.Event, zone model.Zone) string {
	base := fmt.Sprintf("%s (%s) en %s", ev.UserName, ev.UserRole, ev.Location.Name)

	switch ev.EventType {
	case model.EventUnauthorized:
		return base + ". Acceso no autorizado detectado."
	case model.EventEntry:
		return fmt.Sprintf("%s. Entrada a zona de riesgo %s.", base, zone.RiskLevel)
	case model.EventExit:
		return base + ". Salida de zona registrada."
	case model.EventDwellExceeded:
		return fmt.Sprintf("%s. Tiempo de permanencia excedido (%d min).", base, zone.AlertSettings.DwellTimeMinutes)
	default:
		return base
	}
}
