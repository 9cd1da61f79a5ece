package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	dashGrpc "liyu1981.xyz/solar-dashboard-service/pkg/grpc"
)

var maxClients int = 500
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient dashGrpc.DashboardServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var httpPaths = []string{
	"/api/dashboard",
	"/api/analytics?period=30d",
	"/api/devices?show_offline=true",
	"/api/battery",
	"/api/solar-panels",
	"/api/users?sort=lastLogin&direction=desc",
}

var tables = []string{"efficiency", "battery_icon", "battery_color", "panel_efficiency"}

var (
	okCount      atomic.Int64
	limitedCount atomic.Int64
	failedCount  atomic.Int64
)

func main() {
	clientIDs := make([]string, maxClients)
	for i := range maxClients {
		clientIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v client IDs\n", maxClients)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = dashGrpc.NewDashboardServiceClient(conn)

	fmt.Printf("gRPC client ready\n")

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range maxClients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doActions(clientIDs[i])
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	total := okCount.Load() + limitedCount.Load() + failedCount.Load()
	fmt.Printf(
		"\n\rdid %v requests for %v clients: used time=%v seconds, throughput=%v req/second, ok=%v, limited=%v, failed=%v\n",
		total, maxClients, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
		okCount.Load(), limitedCount.Load(), failedCount.Load(),
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndIntn(n int) int {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Intn(n)
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func doActions(clientID string) {
	for range 3 {
		if flipCoin() {
			httpAction(clientID)
		} else {
			grpcAction(clientID)
		}
		time.Sleep(time.Duration(100+rndIntn(1000)) * time.Millisecond)
	}
}

func httpAction(clientID string) {
	path := httpPaths[rndIntn(len(httpPaths))]
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("http://%s%s", httpHostPort, path), nil)
	req.Header.Set(common.HeaderClientID, clientID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		failedCount.Add(1)
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		okCount.Add(1)
	case http.StatusTooManyRequests:
		limitedCount.Add(1)
	default:
		failedCount.Add(1)
	}
	fmt.Printf("\rexecuted GET %v for client %v", path, clientID)
}

func grpcAction(clientID string) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.MetadataClientID, clientID)

	var err error
	switch rndIntn(3) {
	case 0:
		var req *structpb.Struct
		req, err = structpb.NewStruct(map[string]any{
			"table": tables[rndIntn(len(tables))],
			"value": rndFloat64(0, 100, 1),
		})
		if err == nil {
			_, err = grpcClient.Classify(ctx, req)
		}
	case 1:
		values := make([]any, 24)
		for i := range values {
			values[i] = rndFloat64(60, 100, 1)
		}
		var req *structpb.Struct
		req, err = structpb.NewStruct(map[string]any{"values": values, "table": "efficiency"})
		if err == nil {
			_, err = grpcClient.Summarize(ctx, req)
		}
	default:
		_, err = grpcClient.GetOverview(ctx, &emptypb.Empty{})
	}

	switch {
	case err == nil:
		okCount.Add(1)
	case isResourceExhausted(err):
		limitedCount.Add(1)
	default:
		failedCount.Add(1)
		fmt.Printf("\nerror: %v\n", err)
	}
}
