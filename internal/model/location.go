package model

// Coordinates position a location on the floor plan of its building,
// expressed on a 0-100 grid. They serve map rendering only.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Location is a single place inside the school: a classroom, lab, office,
// yard and so on. The catalogue of locations is an immutable lookup table.
type Location struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Type          string      `json:"type"`
	Floor         int         `json:"floor"`
	Building      string      `json:"building"`
	Coordinates   Coordinates `json:"coordinates"`
	Capacity      int         `json:"capacity,omitempty"`
	Description   string      `json:"description,omitempty"`
	EmergencyExit bool        `json:"emergency_exit,omitempty"`
	AssemblyPoint bool        `json:"assembly_point,omitempty"`
	RiskLevel     RiskLevel   `json:"risk_level"`
}

// Building groups locations by physical structure.
type Building struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Floors      int    `json:"floors"`
	Description string `json:"description"`
}
