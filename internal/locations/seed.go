package locations

import "school-security-backend/internal/model"

var schoolBuildings = []model.Building{
	{ID: "principal", Name: "Edificio Principal", Floors: 3, Description: "Edificio principal con aulas, oficinas administrativas y biblioteca"},
	{ID: "laboratorios", Name: "Edificio de Laboratorios", Floors: 2, Description: "Laboratorios de ciencias, informática y talleres"},
	{ID: "deportivo", Name: "Complejo Deportivo", Floors: 1, Description: "Gimnasio, camarines y oficinas deportivas"},
}

var schoolLocations = []model.Location{
	// Edificio Principal - Piso 1
	{ID: "aula-101", Name: "Aula 101", Type: "aula", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 20, Y: 70}, Capacity: 35, RiskLevel: model.RiskLow},
	{ID: "aula-102", Name: "Aula 102", Type: "aula", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 40, Y: 70}, Capacity: 35, RiskLevel: model.RiskLow},
	{ID: "aula-103", Name: "Aula 103", Type: "aula", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 60, Y: 70}, Capacity: 35, RiskLevel: model.RiskLow},
	{ID: "direccion", Name: "Dirección", Type: "oficina", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 15, Y: 40}, Capacity: 10, RiskLevel: model.RiskLow},
	{ID: "secretaria", Name: "Secretaría", Type: "oficina", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 30, Y: 40}, Capacity: 5, RiskLevel: model.RiskLow},
	{ID: "biblioteca", Name: "Biblioteca", Type: "biblioteca", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 70, Y: 40}, Capacity: 80, RiskLevel: model.RiskLow},
	{ID: "enfermeria", Name: "Enfermería", Type: "enfermeria", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 85, Y: 40}, Capacity: 8, RiskLevel: model.RiskMedium},
	{ID: "entrada-principal", Name: "Entrada Principal", Type: "entrada", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 50, Y: 95}, RiskLevel: model.RiskLow, EmergencyExit: true},
	{ID: "patio-principal", Name: "Patio Principal", Type: "patio", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 50, Y: 120}, Capacity: 500, RiskLevel: model.RiskLow, AssemblyPoint: true},

	// Edificio Principal - Piso 2
	{ID: "aula-201", Name: "Aula 201", Type: "aula", Floor: 2, Building: "principal", Coordinates: model.Coordinates{X: 20, Y: 70}, Capacity: 35, RiskLevel: model.RiskLow},
	{ID: "aula-202", Name: "Aula 202", Type: "aula", Floor: 2, Building: "principal", Coordinates: model.Coordinates{X: 40, Y: 70}, Capacity: 35, RiskLevel: model.RiskLow},
	{ID: "aula-203", Name: "Aula 203", Type: "aula", Floor: 2, Building: "principal", Coordinates: model.Coordinates{X: 60, Y: 70}, Capacity: 35, RiskLevel: model.RiskLow},
	{ID: "sala-profesores", Name: "Sala de Profesores", Type: "oficina", Floor: 2, Building: "principal", Coordinates: model.Coordinates{X: 25, Y: 40}, Capacity: 20, RiskLevel: model.RiskLow},
	{ID: "auditorio", Name: "Auditorio", Type: "auditorio", Floor: 2, Building: "principal", Coordinates: model.Coordinates{X: 70, Y: 40}, Capacity: 150, RiskLevel: model.RiskMedium},

	// Edificio Principal - Piso 3
	{ID: "aula-301", Name: "Aula 301", Type: "aula", Floor: 3, Building: "principal", Coordinates: model.Coordinates{X: 20, Y: 70}, Capacity: 35, RiskLevel: model.RiskLow},
	{ID: "aula-302", Name: "Aula 302", Type: "aula", Floor: 3, Building: "principal", Coordinates: model.Coordinates{X: 40, Y: 70}, Capacity: 35, RiskLevel: model.RiskLow},
	{ID: "sala-computacion", Name: "Sala de Computación", Type: "aula", Floor: 3, Building: "principal", Coordinates: model.Coordinates{X: 60, Y: 70}, Capacity: 30, RiskLevel: model.RiskMedium},

	// Edificio de Laboratorios
	{ID: "lab-quimica", Name: "Laboratorio de Química", Type: "laboratorio", Floor: 1, Building: "laboratorios", Coordinates: model.Coordinates{X: 30, Y: 60}, Capacity: 25, RiskLevel: model.RiskHigh},
	{ID: "lab-fisica", Name: "Laboratorio de Física", Type: "laboratorio", Floor: 1, Building: "laboratorios", Coordinates: model.Coordinates{X: 60, Y: 60}, Capacity: 25, RiskLevel: model.RiskMedium},
	{ID: "bodega-lab", Name: "Bodega de Laboratorio", Type: "oficina", Floor: 1, Building: "laboratorios", Coordinates: model.Coordinates{X: 85, Y: 60}, Capacity: 3, RiskLevel: model.RiskHigh},
	{ID: "lab-biologia", Name: "Laboratorio de Biología", Type: "laboratorio", Floor: 2, Building: "laboratorios", Coordinates: model.Coordinates{X: 30, Y: 60}, Capacity: 25, RiskLevel: model.RiskMedium},
	{ID: "taller-arte", Name: "Taller de Arte", Type: "aula", Floor: 2, Building: "laboratorios", Coordinates: model.Coordinates{X: 60, Y: 60}, Capacity: 20, RiskLevel: model.RiskMedium},

	// Complejo Deportivo
	{ID: "gimnasio", Name: "Gimnasio Principal", Type: "gimnasio", Floor: 1, Building: "deportivo", Coordinates: model.Coordinates{X: 50, Y: 50}, Capacity: 200, RiskLevel: model.RiskLow},
	{ID: "camarines-hombres", Name: "Camarines Hombres", Type: "baño", Floor: 1, Building: "deportivo", Coordinates: model.Coordinates{X: 20, Y: 25}, Capacity: 40, RiskLevel: model.RiskLow},
	{ID: "camarines-mujeres", Name: "Camarines Mujeres", Type: "baño", Floor: 1, Building: "deportivo", Coordinates: model.Coordinates{X: 80, Y: 25}, Capacity: 40, RiskLevel: model.RiskLow},
	{ID: "oficina-deportes", Name: "Oficina de Deportes", Type: "oficina", Floor: 1, Building: "deportivo", Coordinates: model.Coordinates{X: 50, Y: 20}, Capacity: 5, RiskLevel: model.RiskLow},
	{ID: "cancha-futbol", Name: "Cancha de Fútbol", Type: "patio", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 150, Y: 50}, Capacity: 300, RiskLevel: model.RiskLow, AssemblyPoint: true},
	{ID: "estacionamiento", Name: "Estacionamiento", Type: "estacionamiento", Floor: 1, Building: "principal", Coordinates: model.Coordinates{X: 110, Y: 90}, Capacity: 50, RiskLevel: model.RiskLow},
}
