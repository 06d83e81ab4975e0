package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/weiawesome/snowflake-service/internal/generator"
	"github.com/weiawesome/snowflake-service/internal/service"
	pkglog "github.com/weiawesome/snowflake-service/pkg/log"
	pb "github.com/weiawesome/snowflake-service/proto/id/v1"
)

type idServer struct {
	pb.UnimplementedIDServiceServer
	svc *service.IDService
}

func (s *idServer) GenerateID(ctx context.Context, req *pb.GenerateIDRequest) (*pb.GenerateIDResponse, error) {
	id, err := s.svc.Generate(ctx, req.GetScheme())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GenerateIDResponse{Id: id}, nil
}

func (s *idServer) GenerateBatchIDs(ctx context.Context, req *pb.GenerateBatchIDsRequest) (*pb.GenerateBatchIDsResponse, error) {
	ids, err := s.svc.GenerateBatch(ctx, req.GetScheme(), int(req.GetCount()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GenerateBatchIDsResponse{Ids: ids}, nil
}

func (s *idServer) ValidateID(ctx context.Context, req *pb.ValidateIDRequest) (*pb.ValidateIDResponse, error) {
	valid, reason, err := s.svc.Validate(ctx, req.GetScheme(), req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ValidateIDResponse{Valid: valid, Reason: reason}, nil
}

func (s *idServer) ParseID(ctx context.Context, req *pb.ParseIDRequest) (*pb.ParseIDResponse, error) {
	result, err := s.svc.Parse(ctx, req.GetScheme(), req.GetId())
	if errors.Is(err, service.ErrUnknownScheme) {
		return nil, toStatus(err)
	}
	if err != nil {
		return &pb.ParseIDResponse{
			Valid:        false,
			ErrorMessage: err.Error(),
		}, nil
	}

	return &pb.ParseIDResponse{
		Valid:         true,
		TimestampMs:   result.TimestampMs,
		NodeId:        result.NodeID,
		Sequence:      result.Sequence,
		UuidVersion:   result.UUIDVersion,
		UuidVariant:   result.UUIDVariant,
		RandomPayload: result.RandomPayload,
		IdLength:      result.IDLength,
		Alphabet:      result.Alphabet,
	}, nil
}

func (s *idServer) ListSchemes(ctx context.Context, _ *pb.ListSchemesRequest) (*pb.ListSchemesResponse, error) {
	return &pb.ListSchemesResponse{Schemes: s.svc.Schemes()}, nil
}

// toStatus maps service and generator errors onto gRPC codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownScheme), errors.Is(err, service.ErrInvalidCount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, generator.ErrClockMovedBackwards):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, generator.ErrTimestampOutOfRange):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// NewServer builds a gRPC server exposing svc with request logging.
func NewServer(svc *service.IDService, logger zerolog.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(pkglog.UnaryServerInterceptor(logger)),
	)
	pb.RegisterIDServiceServer(s, &idServer{svc: svc})
	return s
}

// StartGRPCServer creates and starts the gRPC server in a background goroutine.
func StartGRPCServer(addr string, svc *service.IDService, logger zerolog.Logger) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := NewServer(svc, logger)

	go func() {
		logger.Info().Str("addr", addr).Msg("grpc server listening")
		if err := s.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server error")
		}
	}()

	return s, nil
}
