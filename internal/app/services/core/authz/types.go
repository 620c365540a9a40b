package authz

// Principal is the authenticated caller, produced once per request from
// verified token claims and immutable afterwards.
type Principal struct {
	UserID string
	Role   Role
}

// ResourceIdentifiers carries the ids named by the route. Empty string
// means the identifier is absent. TherapistID may carry a "from/to"
// pair for reassignment routes.
type ResourceIdentifiers struct {
	OwnerID     string
	TherapistID string
	PatientID   string
}

// Decision is the all-or-nothing outcome of a policy evaluation.
type Decision struct {
	Allowed bool
	Reason  string
}

const therapistPairSeparator = "/"
