package service

// TrackerServiceName is the fully-qualified name of the tracker service.
const TrackerServiceName = "calorietracker.v1.TrackerService"

// Procedure paths of TrackerService.
const (
	CompleteOnboardingProcedure = "/" + TrackerServiceName + "/CompleteOnboarding"
	GetSessionProcedure         = "/" + TrackerServiceName + "/GetSession"
	GetDayProcedure             = "/" + TrackerServiceName + "/GetDay"
	AddMealProcedure            = "/" + TrackerServiceName + "/AddMeal"
	ScanMealProcedure           = "/" + TrackerServiceName + "/ScanMeal"
	RecordWeightProcedure       = "/" + TrackerServiceName + "/RecordWeight"
	GetProgressProcedure        = "/" + TrackerServiceName + "/GetProgress"
	GetBMIProcedure             = "/" + TrackerServiceName + "/GetBMI"
)
