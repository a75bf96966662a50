package logx

const (
	FieldAppName    = "app-name"
	FieldDatabase   = "database"
	FieldDurationMs = "duration-ms"
	FieldError      = "error"
	FieldFighterID  = "fighter-id"
	FieldGymID      = "gym-id"
	FieldOutcome    = "outcome"
	FieldUsername   = "username"
	FieldWorkflow   = "workflow"
)
