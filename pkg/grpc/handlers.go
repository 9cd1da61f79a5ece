package grpc

import (
	"context"
	"encoding/json"
	"errors"

	z "github.com/Oudwins/zog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/metrics"
)

// toStruct converts any JSON-serializable view into a Struct, keeping the
// same field names the REST surface uses.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func coreError(err error) error {
	switch {
	case errors.Is(err, classify.ErrUnknownTable),
		errors.Is(err, classify.ErrNonFiniteValue),
		errors.Is(err, metrics.ErrNonFiniteValue):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

type classifyRequest struct {
	Table string
	Value float64
}

var classifyRequestSchema = z.Struct(z.Shape{
	"table": z.String().Min(1).Required(),
	"value": z.Float64().Required(),
})

func (s *DashboardServer) Classify(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in classifyRequest
	if err := classifyRequestSchema.Parse(req.AsMap(), &in); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: %v", err)
	}

	res, err := s.Dashboard.Classify(in.Table, in.Value)
	if err != nil {
		return nil, coreError(err)
	}
	return toStruct(res)
}

type summarizeRequest struct {
	Values []float64
	Table  string
}

var summarizeRequestSchema = z.Struct(z.Shape{
	"values": z.Slice(z.Float64()),
	"table":  z.String().Optional(),
})

type summarizeResponse struct {
	metrics.Aggregate
	Rating *classify.Result `json:"rating,omitempty"`
}

// Summarize reduces a list of values; an absent list reduces to zeros.
// When a table is named the average is classified against it as well.
func (s *DashboardServer) Summarize(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in summarizeRequest
	if err := summarizeRequestSchema.Parse(req.AsMap(), &in); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: %v", err)
	}

	agg, err := metrics.Summarize(in.Values, func(v float64) float64 { return v })
	if err != nil {
		return nil, coreError(err)
	}

	out := summarizeResponse{Aggregate: agg}
	if in.Table != "" {
		rating, err := s.Dashboard.Classify(in.Table, agg.Average)
		if err != nil {
			return nil, coreError(err)
		}
		out.Rating = &rating
	}
	return toStruct(out)
}

func (s *DashboardServer) GetOverview(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	view, err := s.Dashboard.Overview.GetOverview()
	if err != nil {
		return nil, coreError(err)
	}
	return toStruct(view)
}
