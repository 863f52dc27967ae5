package service

import (
	"net/http"

	"connectrpc.com/connect"
)

// NewTrackerServiceHandler builds an HTTP handler serving every TrackerService
// procedure. It returns the path prefix to mount the handler on.
func NewTrackerServiceHandler(svc *TrackerService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(CompleteOnboardingProcedure, connect.NewUnaryHandler(CompleteOnboardingProcedure, svc.CompleteOnboarding, opts...))
	mux.Handle(GetSessionProcedure, connect.NewUnaryHandler(GetSessionProcedure, svc.GetSession, opts...))
	mux.Handle(GetDayProcedure, connect.NewUnaryHandler(GetDayProcedure, svc.GetDay, opts...))
	mux.Handle(AddMealProcedure, connect.NewUnaryHandler(AddMealProcedure, svc.AddMeal, opts...))
	mux.Handle(ScanMealProcedure, connect.NewUnaryHandler(ScanMealProcedure, svc.ScanMeal, opts...))
	mux.Handle(RecordWeightProcedure, connect.NewUnaryHandler(RecordWeightProcedure, svc.RecordWeight, opts...))
	mux.Handle(GetProgressProcedure, connect.NewUnaryHandler(GetProgressProcedure, svc.GetProgress, opts...))
	mux.Handle(GetBMIProcedure, connect.NewUnaryHandler(GetBMIProcedure, svc.GetBMI, opts...))

	return "/" + TrackerServiceName + "/", mux
}
