package grpc

import (
	"context"
	"net"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/weiawesome/snowflake-service/internal/generator"
	"github.com/weiawesome/snowflake-service/internal/service"
	pb "github.com/weiawesome/snowflake-service/proto/id/v1"
)

type testEnv struct {
	conn   *grpc.ClientConn
	client pb.IDServiceClient
	now    *atomic.Int64
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	now := new(atomic.Int64)
	now.Store(generator.DefaultEpoch + 1000)

	sf, err := generator.NewSnowflake(generator.DefaultSnowflakeConfig(5), generator.WithClock(now.Load))
	require.NoError(t, err)
	svc := service.NewIDService(map[string]generator.Generator{
		service.SchemeSnowflake: sf,
		service.SchemeKSUID:     generator.NewKSUIDGenerator(),
	})

	lis := bufconn.Listen(1 << 20)
	srv := NewServer(svc, zerolog.Nop())
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &testEnv{conn: conn, client: pb.NewIDServiceClient(conn), now: now}
}

func TestGenerateID(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	resp, err := env.client.GenerateID(ctx, &pb.GenerateIDRequest{Scheme: service.SchemeSnowflake})
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatUint(1000<<22|5<<12, 10), resp.GetId())

	resp, err = env.client.GenerateID(ctx, &pb.GenerateIDRequest{Scheme: service.SchemeSnowflake})
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatUint(1000<<22|5<<12|1, 10), resp.GetId())
}

func TestGenerateBatchIDs(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	resp, err := env.client.GenerateBatchIDs(ctx, &pb.GenerateBatchIDsRequest{Scheme: service.SchemeSnowflake, Count: 10})
	require.NoError(t, err)
	require.Len(t, resp.GetIds(), 10)
	for i := 1; i < len(resp.GetIds()); i++ {
		prev, _ := strconv.ParseUint(resp.GetIds()[i-1], 10, 64)
		cur, _ := strconv.ParseUint(resp.GetIds()[i], 10, 64)
		assert.Greater(t, cur, prev)
	}

	_, err = env.client.GenerateBatchIDs(ctx, &pb.GenerateBatchIDsRequest{Scheme: service.SchemeSnowflake, Count: 0})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestErrorCodes(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	_, err := env.client.GenerateID(ctx, &pb.GenerateIDRequest{Scheme: "guid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.client.GenerateID(ctx, &pb.GenerateIDRequest{Scheme: service.SchemeSnowflake})
	require.NoError(t, err)

	env.now.Store(generator.DefaultEpoch + 500)
	_, err = env.client.GenerateID(ctx, &pb.GenerateIDRequest{Scheme: service.SchemeSnowflake})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestValidateAndParseID(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	gen, err := env.client.GenerateID(ctx, &pb.GenerateIDRequest{Scheme: service.SchemeSnowflake})
	require.NoError(t, err)

	v, err := env.client.ValidateID(ctx, &pb.ValidateIDRequest{Scheme: service.SchemeSnowflake, Id: gen.GetId()})
	require.NoError(t, err)
	assert.True(t, v.Valid, v.Reason)

	p, err := env.client.ParseID(ctx, &pb.ParseIDRequest{Scheme: service.SchemeSnowflake, Id: gen.GetId()})
	require.NoError(t, err)
	assert.True(t, p.Valid)
	assert.Equal(t, generator.DefaultEpoch+1000, p.TimestampMs)
	assert.Equal(t, int64(5), p.GetNodeId())

	p, err = env.client.ParseID(ctx, &pb.ParseIDRequest{Scheme: service.SchemeSnowflake, Id: "abc"})
	require.NoError(t, err)
	assert.False(t, p.Valid)
	assert.NotEmpty(t, p.ErrorMessage)

	_, err = env.client.ParseID(ctx, &pb.ParseIDRequest{Scheme: "guid", Id: "abc"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListSchemes(t *testing.T) {
	env := setup(t)

	resp, err := env.client.ListSchemes(context.Background(), &pb.ListSchemesRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{service.SchemeKSUID, service.SchemeSnowflake}, resp.Schemes)
}

func TestDefaultProtoCodec(t *testing.T) {
	env := setup(t)

	svc := pb.File_id_v1_id_proto.Services().ByName("IDService")
	require.NotNil(t, svc)
	assert.Equal(t, 5, svc.Methods().Len())

	// A plain Invoke carries no content-subtype, so the server must decode
	// with the registered proto codec.
	out := new(pb.GenerateIDResponse)
	err := env.conn.Invoke(context.Background(), pb.IDService_GenerateID_FullMethodName,
		&pb.GenerateIDRequest{Scheme: service.SchemeSnowflake}, out)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatUint(1000<<22|5<<12, 10), out.GetId())
}
