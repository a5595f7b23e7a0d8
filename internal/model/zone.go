package model

// ZoneType classifies a geofence zone by its purpose.
type ZoneType string

const (
	ZoneTypeRisk       ZoneType = "risk"
	ZoneTypeRestricted ZoneType = "restricted"
	ZoneTypeEmergency  ZoneType = "emergency"
	ZoneTypeSafe       ZoneType = "safe"
	ZoneTypeAssembly   ZoneType = "assembly"
)

// RiskLevel grades how dangerous a zone or location is.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// AlertPriority maps to the urgency of an outward alert.
type AlertPriority string

const (
	PriorityLow    AlertPriority = "low"
	PriorityNormal AlertPriority = "normal"
	PriorityHigh   AlertPriority = "high"
	PriorityUrgent AlertPriority = "urgent"
)

// AlertSettings controls which transitions of a zone raise an alert.
type AlertSettings struct {
	OnEntry          bool          `json:"on_entry"`
	OnExit           bool          `json:"on_exit"`
	OnDwellTime      bool          `json:"on_dwell_time"`
	DwellTimeMinutes int           `json:"dwell_time_minutes,omitempty"`
	Priority         AlertPriority `json:"priority"`
}

// TimeRestriction limits zone access to a clock window on given weekdays.
// Days use time.Weekday numbering (0 = Sunday). A window whose start is later
// than its end spans midnight, e.g. 18:00-07:00.
type TimeRestriction struct {
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
	Days      []int  `json:"days"`
}

// ZonePermissions lists the roles allowed inside a zone and an optional
// time-of-day window.
type ZonePermissions struct {
	AllowedRoles     []string         `json:"allowed_roles"`
	TimeRestrictions *TimeRestriction `json:"time_restrictions,omitempty"`
}

// RuleCondition is the trigger of a declarative zone rule.
type RuleCondition string

const (
	ConditionEntry        RuleCondition = "entry"
	ConditionExit         RuleCondition = "exit"
	ConditionDwell        RuleCondition = "dwell"
	ConditionUnauthorized RuleCondition = "unauthorized_access"
)

// RuleAction is the configured response of a declarative zone rule.
type RuleAction string

const (
	ActionAlert        RuleAction = "alert"
	ActionNotification RuleAction = "notification"
	ActionLockdown     RuleAction = "lockdown"
	ActionEvacuation   RuleAction = "evacuation"
	ActionLogOnly      RuleAction = "log_only"
)

// ZoneRule is a declarative rule attached to a zone. Rules document intent;
// only the zone-level AlertSettings are executed by the engine.
type ZoneRule struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Condition  RuleCondition  `json:"condition"`
	Action     RuleAction     `json:"action"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Zone is a named collection of school locations sharing risk, permission and
// alerting rules. The member location set is fixed at construction; only
// Active may change over the zone's lifetime.
//
// Radius exists for parity with the floor-plan data but membership is decided
// by location-id containment, never by distance.
type Zone struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          ZoneType        `json:"type"`
	RiskLevel     RiskLevel       `json:"risk_level"`
	LocationIDs   []string        `json:"location_ids"`
	RadiusMeters  int             `json:"radius_meters"`
	Rules         []ZoneRule      `json:"rules"`
	Active        bool            `json:"active"`
	Description   string          `json:"description"`
	AlertSettings AlertSettings   `json:"alert_settings"`
	Permissions   ZonePermissions `json:"permissions"`
}

// Contains reports whether the location id belongs to the zone's member set.
func (z *Zone) Contains(locationID string) bool {
	for _, id := range z.LocationIDs {
		if id == locationID {
			return true
		}
	}
	return false
}

// AllowsRole reports whether the role appears in the zone's allowed roles.
func (z *Zone) AllowsRole(role string) bool {
	for _, r := range z.Permissions.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
