package geofence

import (
	"school-security-backend/internal/locations"
	"school-security-backend/internal/model"
)

// DefaultZones returns the school's predefined geofence zones. The
// after-hours zone spans every location in the catalogue.
func DefaultZones(cat *locations.Catalogue) []model.Zone {
	return []model.Zone{
		{
			ID:           "high-risk-labs",
			Name:         "Laboratorios de Alto Riesgo",
			Type:         model.ZoneTypeRisk,
			RiskLevel:    model.RiskHigh,
			LocationIDs:  []string{"lab-quimica", "lab-fisica"},
			RadiusMeters: 10,
			Rules: []model.ZoneRule{
				{
					ID:         "lab-entry-rule",
					Name:       "Entrada a Laboratorio",
					Condition:  model.ConditionEntry,
					Action:     model.ActionAlert,
					Parameters: map[string]any{"required_role": "profesor"},
				},
				{
					ID:         "lab-dwell-rule",
					Name:       "Tiempo Excesivo en Laboratorio",
					Condition:  model.ConditionDwell,
					Action:     model.ActionNotification,
					Parameters: map[string]any{"dwell_time_minutes": 120},
				},
			},
			Active:      true,
			Description: "Zona de laboratorios con químicos y equipos peligrosos",
			AlertSettings: model.AlertSettings{
				OnEntry:          true,
				OnExit:           true,
				OnDwellTime:      true,
				DwellTimeMinutes: 120,
				Priority:         model.PriorityHigh,
			},
			Permissions: model.ZonePermissions{
				AllowedRoles: []string{"administrador", "coordinador"},
				TimeRestrictions: &model.TimeRestriction{
					StartTime: "08:00",
					EndTime:   "18:00",
					Days:      []int{1, 2, 3, 4, 5},
				},
			},
		},
		{
			ID:           "restricted-admin",
			Name:         "Área Administrativa Restringida",
			Type:         model.ZoneTypeRestricted,
			RiskLevel:    model.RiskMedium,
			LocationIDs:  []string{"direccion", "secretaria", "sala-profesores"},
			RadiusMeters: 5,
			Rules: []model.ZoneRule{
				{
					ID:        "admin-unauthorized-rule",
					Name:      "Acceso No Autorizado",
					Condition: model.ConditionEntry,
					Action:    model.ActionAlert,
				},
			},
			Active:      true,
			Description: "Área administrativa con acceso restringido",
			AlertSettings: model.AlertSettings{
				OnEntry:  true,
				Priority: model.PriorityNormal,
			},
			Permissions: model.ZonePermissions{
				AllowedRoles: []string{"administrador", "coordinador"},
			},
		},
		{
			ID:           "emergency-exits",
			Name:         "Salidas de Emergencia",
			Type:         model.ZoneTypeEmergency,
			RiskLevel:    model.RiskCritical,
			LocationIDs:  []string{"entrada-principal"},
			RadiusMeters: 3,
			Rules: []model.ZoneRule{
				{
					ID:        "emergency-exit-rule",
					Name:      "Uso de Salida de Emergencia",
					Condition: model.ConditionEntry,
					Action:    model.ActionAlert,
				},
			},
			Active:      true,
			Description: "Salidas de emergencia - uso solo en emergencias",
			AlertSettings: model.AlertSettings{
				OnEntry:  true,
				Priority: model.PriorityUrgent,
			},
			Permissions: model.ZonePermissions{
				AllowedRoles: []string{"administrador", "coordinador", "inspector", "docente"},
			},
		},
		{
			ID:           "safe-assembly",
			Name:         "Puntos de Encuentro Seguros",
			Type:         model.ZoneTypeAssembly,
			RiskLevel:    model.RiskLow,
			LocationIDs:  []string{"patio-principal", "cancha-futbol"},
			RadiusMeters: 20,
			Rules: []model.ZoneRule{
				{
					ID:        "assembly-entry-rule",
					Name:      "Llegada a Punto de Encuentro",
					Condition: model.ConditionEntry,
					Action:    model.ActionLogOnly,
				},
			},
			Active:      true,
			Description: "Puntos de encuentro seguros para evacuaciones",
			AlertSettings: model.AlertSettings{
				OnEntry:  true,
				OnExit:   true,
				Priority: model.PriorityLow,
			},
			Permissions: model.ZonePermissions{
				AllowedRoles: []string{"administrador", "coordinador", "inspector", "docente"},
			},
		},
		{
			ID:           "after-hours-restricted",
			Name:         "Acceso Fuera de Horario",
			Type:         model.ZoneTypeRestricted,
			RiskLevel:    model.RiskMedium,
			LocationIDs:  cat.IDs(),
			RadiusMeters: 5,
			Rules: []model.ZoneRule{
				{
					ID:        "after-hours-rule",
					Name:      "Acceso Fuera de Horario",
					Condition: model.ConditionEntry,
					Action:    model.ActionAlert,
				},
			},
			Active:      true,
			Description: "Control de acceso fuera del horario escolar",
			AlertSettings: model.AlertSettings{
				OnEntry:  true,
				OnExit:   true,
				Priority: model.PriorityHigh,
			},
			Permissions: model.ZonePermissions{
				AllowedRoles: []string{"administrador", "coordinador"},
				TimeRestrictions: &model.TimeRestriction{
					StartTime: "18:00",
					EndTime:   "07:00",
					Days:      []int{0, 1, 2, 3, 4, 5, 6},
				},
			},
		},
	}
}
