package grpc

import (
	"context"
	"math"
	"net"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/adapters/cache"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/adapters/memory"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/adapters/mock"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/auth"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/fleet"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/monitor"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/simulation"
	"github.com/n25shubhamhibare/aqua-lora-watch/pkg/pb"
)

type testEnv struct {
	client  pb.WaterServiceClient
	monitor *monitor.Monitor
}

// startTestServer creates an in-process gRPC server and returns a connected client.
// The server is stopped when the test ends.
func startTestServer(t *testing.T) testEnv {
	t.Helper()

	authSvc := auth.NewService(cache.NewSessionStore(), auth.NewTokenService("test-secret"), auth.NewBcryptHasher(bcrypt.MinCost), time.Hour)
	if err := authSvc.Register(auth.DefaultUser, auth.DefaultPassword); err != nil {
		t.Fatalf("failed to register user: %v", err)
	}

	now := time.Now()
	engine := simulation.NewEngine(mock.NewSequenceSource(0.5))
	mon := monitor.New(engine, domain.DefaultSensors(now), domain.DefaultSystemStatus(now), monitor.WithInterval(10*time.Millisecond))
	t.Cleanup(mon.Stop)

	devices := fleet.NewService(memory.NewDeviceRepository(domain.DefaultDevices()...), time.Hour)
	t.Cleanup(devices.Close)

	handler := NewWaterServiceHandler(authSvc, mon, devices)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	srv := grpc.NewServer(
		grpc.UnaryInterceptor(UnaryAuthInterceptor(authSvc)),
		grpc.StreamInterceptor(StreamAuthInterceptor(authSvc)),
	)
	pb.RegisterWaterServiceServer(srv, handler)

	go srv.Serve(lis)
	t.Cleanup(func() {
		srv.Stop()
	})

	conn, err := grpc.NewClient(
		lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return testEnv{client: pb.NewWaterServiceClient(conn), monitor: mon}
}

// login returns a context carrying the session token
func login(t *testing.T, client pb.WaterServiceClient) context.Context {
	t.Helper()

	resp, err := client.Login(context.Background(), &pb.LoginRequest{Email: auth.DefaultEmail, Password: auth.DefaultPassword})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+resp.Token)
}

func assertCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil error", want)
	}
	if got := status.Code(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}

func TestLogin_ThenCurrentUser(t *testing.T) {
	env := startTestServer(t)
	ctx := login(t, env.client)

	resp, err := env.client.CurrentUser(ctx, &pb.CurrentUserRequest{})
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if resp.User.Name != "Admin User" || resp.User.Role != "admin" {
		t.Errorf("unexpected user: %+v", resp.User)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := startTestServer(t)

	_, err := env.client.Login(context.Background(), &pb.LoginRequest{Email: auth.DefaultEmail, Password: "nope"})
	assertCode(t, err, codes.Unauthenticated)
}

func TestRequiresToken(t *testing.T) {
	env := startTestServer(t)

	_, err := env.client.ListSensors(context.Background(), &pb.ListSensorsRequest{})
	assertCode(t, err, codes.Unauthenticated)

	bad := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer garbage")
	_, err = env.client.ListSensors(bad, &pb.ListSensorsRequest{})
	assertCode(t, err, codes.Unauthenticated)
}

func TestLogout_InvalidatesToken(t *testing.T) {
	env := startTestServer(t)
	ctx := login(t, env.client)

	if _, err := env.client.Logout(ctx, &pb.LogoutRequest{}); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	_, err := env.client.CurrentUser(ctx, &pb.CurrentUserRequest{})
	assertCode(t, err, codes.Unauthenticated)
}

func TestListSensors_Baseline(t *testing.T) {
	env := startTestServer(t)
	ctx := login(t, env.client)

	resp, err := env.client.ListSensors(ctx, &pb.ListSensorsRequest{})
	if err != nil {
		t.Fatalf("ListSensors failed: %v", err)
	}
	if len(resp.Sensors) != 5 {
		t.Fatalf("expected 5 sensors, got %d", len(resp.Sensors))
	}
	if resp.Summary.Good != 5 || resp.Summary.Overall != "good" {
		t.Errorf("unexpected summary: %+v", resp.Summary)
	}
	if resp.Alert != nil {
		t.Errorf("expected no alert, got %+v", resp.Alert)
	}
	if resp.Status.BatteryLevel != 78 || !resp.Status.IsOnline {
		t.Errorf("unexpected status: %+v", resp.Status)
	}

	ph := resp.Sensors[0]
	if ph.Id != "ph" || ph.Display != "7.2 pH" || ph.StatusText != "Good" || !ph.NotificationsEnabled {
		t.Errorf("unexpected pH sensor: %+v", ph)
	}
}

func TestGetSensor_NotFound(t *testing.T) {
	env := startTestServer(t)
	ctx := login(t, env.client)

	_, err := env.client.GetSensor(ctx, &pb.GetSensorRequest{SensorId: "chlorine"})
	assertCode(t, err, codes.NotFound)
}

func TestGetHistory(t *testing.T) {
	env := startTestServer(t)
	ctx := login(t, env.client)

	tests := []struct {
		name  string
		req   *pb.GetHistoryRequest
		count int
		label string
	}{
		{name: "default range", req: &pb.GetHistoryRequest{SensorId: "ph"}, count: 25, label: "Last 24 Hours"},
		{name: "week", req: &pb.GetHistoryRequest{SensorId: "tds", Range: "week"}, count: 43, label: "Last Week"},
		{name: "explicit window", req: &pb.GetHistoryRequest{SensorId: "oxygen", Hours: 4, IntervalMinutes: 30}, count: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.client.GetHistory(ctx, tt.req)
			if err != nil {
				t.Fatalf("GetHistory failed: %v", err)
			}
			if len(resp.Points) != tt.count {
				t.Errorf("expected %d points, got %d", tt.count, len(resp.Points))
			}
			if resp.Label != tt.label {
				t.Errorf("label = %q, want %q", resp.Label, tt.label)
			}
			for i := 1; i < len(resp.Points); i++ {
				if resp.Points[i].Timestamp < resp.Points[i-1].Timestamp {
					t.Fatalf("points not ascending at %d", i)
				}
			}
			if resp.Min > resp.Average || resp.Average > resp.Max {
				t.Errorf("inconsistent stats: min %v avg %v max %v", resp.Min, resp.Average, resp.Max)
			}
		})
	}
}

func TestGetHistory_InvalidArguments(t *testing.T) {
	env := startTestServer(t)
	ctx := login(t, env.client)

	tests := []struct {
		name string
		req  *pb.GetHistoryRequest
		code codes.Code
	}{
		{name: "unknown range", req: &pb.GetHistoryRequest{SensorId: "ph", Range: "year"}, code: codes.InvalidArgument},
		{name: "zero interval", req: &pb.GetHistoryRequest{SensorId: "ph", Hours: 4, IntervalMinutes: 0}, code: codes.InvalidArgument},
		{name: "too many points", req: &pb.GetHistoryRequest{SensorId: "ph", Hours: 2000, IntervalMinutes: 1}, code: codes.InvalidArgument},
		{name: "max hours", req: &pb.GetHistoryRequest{SensorId: "ph", Hours: math.MaxInt32, IntervalMinutes: 1}, code: codes.InvalidArgument},
		{name: "unknown sensor", req: &pb.GetHistoryRequest{SensorId: "chlorine"}, code: codes.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.client.GetHistory(ctx, tt.req)
			assertCode(t, err, tt.code)
		})
	}
}

func TestUpdateThresholds_ReclassifiesAndNotifies(t *testing.T) {
	env := startTestServer(t)
	ctx := login(t, env.client)

	resp, err := env.client.UpdateThresholds(ctx, &pb.UpdateThresholdsRequest{
		SensorId: "ph",
		Thresholds: &pb.Thresholds{
			Good:     &pb.Range{Min: 7.5, Max: 8.0},
			Moderate: &pb.Range{Min: 5.0, Max: 9.0},
		},
	})
	if err != nil {
		t.Fatalf("UpdateThresholds failed: %v", err)
	}
	if resp.Sensor.Status != "moderate" {
		t.Errorf("expected moderate, got %q", resp.Sensor.Status)
	}

	notes, err := env.client.ListNotifications(ctx, &pb.ListNotificationsRequest{})
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(notes.Notifications) != 1 || notes.Notifications[0].Severity != "warning" {
		t.Fatalf("expected one warning, got %+v", notes.Notifications)
	}

	if _, err := env.client.SetNotifications(ctx, &pb.SetNotificationsRequest{SensorId: "ph", Enabled: false}); err != nil {
		t.Fatalf("SetNotifications failed: %v", err)
	}
	notes, _ = env.client.ListNotifications(ctx, &pb.ListNotificationsRequest{})
	if len(notes.Notifications) != 0 {
		t.Errorf("expected muted sensor to be silent, got %+v", notes.Notifications)
	}
}

func TestUpdateThresholds_Invalid(t *testing.T) {
	env := startTestServer(t)
	ctx := login(t, env.client)

	_, err := env.client.UpdateThresholds(ctx, &pb.UpdateThresholdsRequest{
		SensorId: "ph",
		Thresholds: &pb.Thresholds{
			Good:     &pb.Range{Min: 9, Max: 6},
			Moderate: &pb.Range{Min: 5, Max: 9},
		},
	})
	assertCode(t, err, codes.InvalidArgument)

	_, err = env.client.UpdateThresholds(ctx, &pb.UpdateThresholdsRequest{
		SensorId:   "ph",
		Thresholds: &pb.Thresholds{Good: &pb.Range{Min: 6.5, Max: 8.5}},
	})
	assertCode(t, err, codes.InvalidArgument)

	_, err = env.client.SetNotifications(ctx, &pb.SetNotificationsRequest{SensorId: "chlorine"})
	assertCode(t, err, codes.NotFound)
}

func TestDevices(t *testing.T) {
	env := startTestServer(t)
	ctx := login(t, env.client)

	list, err := env.client.ListDevices(ctx, &pb.ListDevicesRequest{Search: "tank"})
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(list.Devices) != 3 {
		t.Errorf("expected 3 tank devices, got %d", len(list.Devices))
	}

	added, err := env.client.AddDevice(ctx, &pb.AddDeviceRequest{Name: "Inlet Sensor", Type: "Turbidity", Location: "Inlet"})
	if err != nil {
		t.Fatalf("AddDevice failed: %v", err)
	}
	if added.Device.Id != "device-005" || added.Device.Status != "online" || added.Device.Battery != 100 {
		t.Errorf("unexpected device: %+v", added.Device)
	}

	_, err = env.client.AddDevice(ctx, &pb.AddDeviceRequest{Name: "Nameless"})
	assertCode(t, err, codes.InvalidArgument)

	rebooted, err := env.client.RebootDevice(ctx, &pb.RebootDeviceRequest{DeviceId: "device-005"})
	if err != nil {
		t.Fatalf("RebootDevice failed: %v", err)
	}
	if rebooted.Device.StatusText != "Rebooting" {
		t.Errorf("expected Rebooting, got %q", rebooted.Device.StatusText)
	}

	_, err = env.client.RebootDevice(ctx, &pb.RebootDeviceRequest{DeviceId: "device-005"})
	assertCode(t, err, codes.FailedPrecondition)

	_, err = env.client.RebootDevice(ctx, &pb.RebootDeviceRequest{DeviceId: "device-404"})
	assertCode(t, err, codes.NotFound)
}

func TestWatchSnapshots(t *testing.T) {
	env := startTestServer(t)
	ctx, cancel := context.WithTimeout(login(t, env.client), 5*time.Second)
	defer cancel()

	stream, err := env.client.WatchSnapshots(ctx, &pb.WatchSnapshotsRequest{})
	if err != nil {
		t.Fatalf("WatchSnapshots failed: %v", err)
	}

	first, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv failed: %v", err)
	}
	if first.Sequence != 0 || len(first.Sensors) != 5 {
		t.Errorf("unexpected initial snapshot: seq %d, %d sensors", first.Sequence, len(first.Sensors))
	}

	env.monitor.Start()

	next, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv failed: %v", err)
	}
	if next.Sequence <= first.Sequence {
		t.Errorf("sequence did not advance: %d then %d", first.Sequence, next.Sequence)
	}
}

func TestWatchSnapshots_RequiresToken(t *testing.T) {
	env := startTestServer(t)

	stream, err := env.client.WatchSnapshots(context.Background(), &pb.WatchSnapshotsRequest{})
	if err != nil {
		assertCode(t, err, codes.Unauthenticated)
		return
	}
	_, err = stream.Recv()
	assertCode(t, err, codes.Unauthenticated)
}

func TestServiceDescriptorRegistered(t *testing.T) {
	desc, err := protoregistry.GlobalFiles.FindDescriptorByName("water.v1.WaterService")
	if err != nil {
		t.Fatalf("service descriptor not registered: %v", err)
	}
	svc, ok := desc.(protoreflect.ServiceDescriptor)
	if !ok {
		t.Fatalf("expected a service descriptor, got %T", desc)
	}

	methods := pb.WaterService_ServiceDesc.Methods
	if got, want := svc.Methods().Len(), len(methods)+len(pb.WaterService_ServiceDesc.Streams); got != want {
		t.Fatalf("descriptor has %d methods, service registers %d", got, want)
	}
	for _, m := range methods {
		if svc.Methods().ByName(protoreflect.Name(m.MethodName)) == nil {
			t.Errorf("method %s missing from descriptor", m.MethodName)
		}
	}
	watch := svc.Methods().ByName("WatchSnapshots")
	if watch == nil || !watch.IsStreamingServer() {
		t.Error("WatchSnapshots should be server-streaming")
	}
}
