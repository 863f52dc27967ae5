package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/0xcattaco/Calorie-Tracker-14-Nov/internal/session"
)

// TrackerService implements the Connect TrackerService on top of a session.
type TrackerService struct {
	sess *session.Session
}

// NewTrackerService creates a new TrackerService for the given session.
func NewTrackerService(sess *session.Session) *TrackerService {
	return &TrackerService{sess: sess}
}

// CompleteOnboarding stores the profile and generates the daily plan.
func (s *TrackerService) CompleteOnboarding(ctx context.Context, req *connect.Request[CompleteOnboardingRequest]) (*connect.Response[CompleteOnboardingResponse], error) {
	slog.Info("CompleteOnboarding request received",
		"goal", req.Msg.Profile.Goal,
		"gender", req.Msg.Profile.Gender,
	)

	goals, err := s.sess.CompleteOnboarding(ctx, req.Msg.Profile)
	if err != nil {
		slog.Warn("CompleteOnboarding rejected", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&CompleteOnboardingResponse{
		Goals:   goals,
		Session: s.sess.Snapshot(),
	}), nil
}

// GetSession returns the onboarding state, profile and goals.
func (s *TrackerService) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	return connect.NewResponse(&GetSessionResponse{Session: s.sess.Snapshot()}), nil
}

// GetDay returns one ledger day with its progress against the goals.
func (s *TrackerService) GetDay(ctx context.Context, req *connect.Request[GetDayRequest]) (*connect.Response[GetDayResponse], error) {
	day, err := s.sess.Day(req.Msg.Date)
	if err != nil {
		slog.Warn("GetDay rejected", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetDayResponse{Day: day}), nil
}

// AddMeal logs a manually entered meal.
func (s *TrackerService) AddMeal(ctx context.Context, req *connect.Request[AddMealRequest]) (*connect.Response[AddMealResponse], error) {
	slog.Info("AddMeal request received",
		"date", req.Msg.Date,
		"name", req.Msg.Name,
		"calories", req.Msg.Nutrition.Calories,
	)

	logged, err := s.sess.AddMeal(req.Msg.Date, session.MealInput{
		Name:        req.Msg.Name,
		Description: req.Msg.Description,
		Image:       req.Msg.Image,
		Nutrition:   req.Msg.Nutrition,
	})
	if err != nil {
		slog.Warn("AddMeal rejected", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Meal logged", "date", logged.Day.Date, "meal_id", logged.Meal.ID)
	return connect.NewResponse(&AddMealResponse{Meal: logged.Meal, Day: logged.Day}), nil
}

// ScanMeal recognizes a photographed meal and logs it.
func (s *TrackerService) ScanMeal(ctx context.Context, req *connect.Request[ScanMealRequest]) (*connect.Response[ScanMealResponse], error) {
	slog.Info("ScanMeal request received",
		"date", req.Msg.Date,
		"mime_type", req.Msg.MimeType,
		"image_bytes", len(req.Msg.Image),
	)

	logged, err := s.sess.ScanMeal(ctx, req.Msg.Date, req.Msg.Image, req.Msg.MimeType)
	if err != nil {
		slog.Warn("ScanMeal failed", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Scanned meal logged",
		"date", logged.Day.Date,
		"meal_id", logged.Meal.ID,
		"dish", logged.Meal.Name,
	)
	return connect.NewResponse(&ScanMealResponse{Meal: logged.Meal, Day: logged.Day}), nil
}

// RecordWeight records a weigh-in.
func (s *TrackerService) RecordWeight(ctx context.Context, req *connect.Request[RecordWeightRequest]) (*connect.Response[RecordWeightResponse], error) {
	slog.Info("RecordWeight request received", "date", req.Msg.Date, "weight", req.Msg.Weight)

	obs, err := s.sess.RecordWeight(req.Msg.Date, req.Msg.Weight)
	if err != nil {
		slog.Warn("RecordWeight rejected", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&RecordWeightResponse{
		Observation: obs,
		History:     s.sess.WeightHistory(),
	}), nil
}

// GetProgress returns BMI, streak, weekly calories, weight trend and goal
// progress.
func (s *TrackerService) GetProgress(ctx context.Context, req *connect.Request[GetProgressRequest]) (*connect.Response[GetProgressResponse], error) {
	progress, err := s.sess.Progress(session.ProgressQuery{
		WeekOffset: req.Msg.WeekOffset,
		WeekLabel:  req.Msg.WeekLabel,
		Window:     req.Msg.Window,
	})
	if err != nil {
		slog.Warn("GetProgress rejected", "window", req.Msg.Window, "week_offset", req.Msg.WeekOffset, "error", err)
		return nil, toConnectError(err)
	}

	slog.Debug("GetProgress successful",
		"streak", progress.Streak.Days,
		"trend_points", len(progress.Trend.Points),
	)
	return connect.NewResponse(&GetProgressResponse{Progress: progress}), nil
}

// GetBMI returns the BMI report for the current weight.
func (s *TrackerService) GetBMI(ctx context.Context, req *connect.Request[GetBMIRequest]) (*connect.Response[GetBMIResponse], error) {
	return connect.NewResponse(&GetBMIResponse{BMI: s.sess.BMI()}), nil
}

var invalidArgumentErrors = []error{
	session.ErrInvalidDate,
	session.ErrInvalidWeight,
	session.ErrInvalidNutrition,
	session.ErrInvalidProfile,
	session.ErrInvalidWeekOffset,
	session.ErrInvalidWindow,
	session.ErrEmptyImage,
	session.ErrEmptyMealName,
}

// toConnectError maps session errors to Connect codes.
func toConnectError(err error) *connect.Error {
	for _, target := range invalidArgumentErrors {
		if errors.Is(err, target) {
			return connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, session.ErrRecognitionFailed):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
