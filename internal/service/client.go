package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// TrackerServiceClient calls TrackerService over Connect with the JSON codec.
type TrackerServiceClient struct {
	completeOnboarding *connect.Client[CompleteOnboardingRequest, CompleteOnboardingResponse]
	getSession         *connect.Client[GetSessionRequest, GetSessionResponse]
	getDay             *connect.Client[GetDayRequest, GetDayResponse]
	addMeal            *connect.Client[AddMealRequest, AddMealResponse]
	scanMeal           *connect.Client[ScanMealRequest, ScanMealResponse]
	recordWeight       *connect.Client[RecordWeightRequest, RecordWeightResponse]
	getProgress        *connect.Client[GetProgressRequest, GetProgressResponse]
	getBMI             *connect.Client[GetBMIRequest, GetBMIResponse]
}

// NewTrackerServiceClient creates a client for the service at baseURL.
func NewTrackerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TrackerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &TrackerServiceClient{
		completeOnboarding: connect.NewClient[CompleteOnboardingRequest, CompleteOnboardingResponse](httpClient, baseURL+CompleteOnboardingProcedure, opts...),
		getSession:         connect.NewClient[GetSessionRequest, GetSessionResponse](httpClient, baseURL+GetSessionProcedure, opts...),
		getDay:             connect.NewClient[GetDayRequest, GetDayResponse](httpClient, baseURL+GetDayProcedure, opts...),
		addMeal:            connect.NewClient[AddMealRequest, AddMealResponse](httpClient, baseURL+AddMealProcedure, opts...),
		scanMeal:           connect.NewClient[ScanMealRequest, ScanMealResponse](httpClient, baseURL+ScanMealProcedure, opts...),
		recordWeight:       connect.NewClient[RecordWeightRequest, RecordWeightResponse](httpClient, baseURL+RecordWeightProcedure, opts...),
		getProgress:        connect.NewClient[GetProgressRequest, GetProgressResponse](httpClient, baseURL+GetProgressProcedure, opts...),
		getBMI:             connect.NewClient[GetBMIRequest, GetBMIResponse](httpClient, baseURL+GetBMIProcedure, opts...),
	}
}

func (c *TrackerServiceClient) CompleteOnboarding(ctx context.Context, req *connect.Request[CompleteOnboardingRequest]) (*connect.Response[CompleteOnboardingResponse], error) {
	return c.completeOnboarding.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) GetDay(ctx context.Context, req *connect.Request[GetDayRequest]) (*connect.Response[GetDayResponse], error) {
	return c.getDay.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) AddMeal(ctx context.Context, req *connect.Request[AddMealRequest]) (*connect.Response[AddMealResponse], error) {
	return c.addMeal.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) ScanMeal(ctx context.Context, req *connect.Request[ScanMealRequest]) (*connect.Response[ScanMealResponse], error) {
	return c.scanMeal.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) RecordWeight(ctx context.Context, req *connect.Request[RecordWeightRequest]) (*connect.Response[RecordWeightResponse], error) {
	return c.recordWeight.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) GetProgress(ctx context.Context, req *connect.Request[GetProgressRequest]) (*connect.Response[GetProgressResponse], error) {
	return c.getProgress.CallUnary(ctx, req)
}

func (c *TrackerServiceClient) GetBMI(ctx context.Context, req *connect.Request[GetBMIRequest]) (*connect.Response[GetBMIResponse], error) {
	return c.getBMI.CallUnary(ctx, req)
}
