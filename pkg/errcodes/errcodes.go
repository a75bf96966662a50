package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Interrupted         failure.ErrorCode = "Interrupted"

	FighterNotFound    failure.ErrorCode = "FighterNotFound"
	GymNotFound        failure.ErrorCode = "GymNotFound"
	PlanNotFound       failure.ErrorCode = "PlanNotFound"
	EquipmentNotFound  failure.ErrorCode = "EquipmentNotFound"
	SessionNotFound    failure.ErrorCode = "SessionNotFound"
	SpellNotFound      failure.ErrorCode = "SpellNotFound"
	InsufficientBudget failure.ErrorCode = "InsufficientBudget"
	InvalidSelection   failure.ErrorCode = "InvalidSelection"
)
