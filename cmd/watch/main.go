// Command watch logs in to the water service and logs every snapshot it streams.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/auth"
	"github.com/n25shubhamhibare/aqua-lora-watch/pkg/pb"
	"github.com/n25shubhamhibare/aqua-lora-watch/pkg/tlsconfig"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	addr := getenv("WATER_SERVICE_ADDR", "localhost:50051")
	email := getenv("AUTH_EMAIL", auth.DefaultEmail)
	password := getenv("AUTH_PASSWORD", auth.DefaultPassword)

	creds := insecure.NewCredentials()
	if cert := os.Getenv("TLS_CERT"); cert != "" {
		files := tlsconfig.Files{Cert: cert, Key: os.Getenv("TLS_KEY"), CA: os.Getenv("TLS_CA")}
		tlsCfg, err := files.Client()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		creds = credentials.NewTLS(tlsCfg)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("failed to create client")
	}
	defer conn.Close()
	client := pb.NewWaterServiceClient(conn)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watch(ctx, client, email, password); err != nil {
		log.Error().Err(err).Msg("watch failed")
	}
}

// watch logs in, logs every streamed snapshot until the stream ends and
// always logs out again once logged in
func watch(ctx context.Context, client pb.WaterServiceClient, email, password string) error {
	login, err := client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	log.Info().Str("user", login.GetUser().GetName()).Str("role", login.GetUser().GetRole()).Msg("logged in")

	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+login.Token)
	defer func() {
		if _, err := client.Logout(context.WithoutCancel(ctx), &pb.LogoutRequest{}); err != nil {
			log.Warn().Err(err).Msg("logout failed")
		}
	}()

	stream, err := client.WatchSnapshots(ctx, &pb.WatchSnapshotsRequest{})
	if err != nil {
		return fmt.Errorf("watch snapshots: %w", err)
	}

	for {
		snap, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			log.Info().Msg("stream closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("receive snapshot: %w", err)
		}

		event := log.Info().
			Uint64("sequence", snap.Sequence).
			Float64("battery", snap.GetStatus().GetBatteryLevel()).
			Float64("signal", snap.GetStatus().GetSignalStrength()).
			Str("state", snap.GetStatus().GetState())
		for _, s := range snap.Sensors {
			event = event.Str(s.Id, s.Display+" ("+s.StatusText+")")
		}
		event.Msg("snapshot")
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
