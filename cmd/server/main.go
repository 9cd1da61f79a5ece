package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/dashboard"
	"liyu1981.xyz/solar-dashboard-service/pkg/db"
	dashGrpc "liyu1981.xyz/solar-dashboard-service/pkg/grpc"
	dashHttp "liyu1981.xyz/solar-dashboard-service/pkg/http"
	"liyu1981.xyz/solar-dashboard-service/pkg/mockdata"
	"liyu1981.xyz/solar-dashboard-service/pkg/observability"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	dbType := os.Getenv(common.EnvKeyDashDBType)
	switch dbType {
	case db.DBTypeFile, db.DBTypeMemory, "":
	default:
		log.Fatal("Unknown DASH_DB_TYPE: " + dbType)
	}
	dbInstance := db.GetInstance(db.UseDialectorFromEnv())

	grpcHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyDashGrpcHostPort))
	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyDashHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyDashDefaultRate), 64); err != nil {
		log.Fatal("Invalid DASH_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyDashDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid DASH_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	// an unset seed gives a different series on every start
	seed := time.Now().UnixNano()
	if s := os.Getenv(common.EnvKeyDashMockSeed); s != "" {
		if seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			log.Fatal("Invalid DASH_MOCK_SEED, should be an int value")
		}
	}

	thresholds, err := classify.LoadRegistry(os.Getenv(common.EnvKeyDashThresholdsPath))
	if err != nil {
		log.Fatalf("Invalid threshold tables: %v", err)
	}

	logger := common.GetLogger()

	observability.Init()

	core := dashboard.New(dbInstance, mockdata.NewSource(seed, nil), thresholds)

	logger.Info("dashboard core created with:",
		zap.String("db_type", dbType),
		zap.Int64("mock_seed", seed),
		zap.Strings("threshold_tables", thresholds.Names()))

	if grpcHostPort != "" {
		logger.Info("Starting gRPC server on port " + grpcHostPort)
		go func() {
			dashGrpcServer := dashGrpc.DashboardServer{
				Dashboard:        core,
				RateLimiterStore: dashboard.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
			}
			interceptor := dashGrpcServer.CreateRateLimitInterceptor([]string{
				dashGrpc.MethodClassify,
				dashGrpc.MethodSummarize,
				dashGrpc.MethodGetOverview,
			})
			s := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
			dashGrpc.RegisterDashboardServiceServer(s, &dashGrpcServer)
			logger.Info("gRPC server created with:",
				zap.String("default_limiter",
					fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

			listener, err := net.Listen("tcp", grpcHostPort)
			if err != nil {
				log.Fatalf("failed to listen: %v", err)
			}

			logger.Info("start gRPC server on " + grpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &dashHttp.RestfulServer{
		Server:           gin.Default(),
		Dashboard:        core,
		RateLimiterStore: dashboard.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
