package dashboard

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"liyu1981.xyz/solar-dashboard-service/pkg/classify"
	"liyu1981.xyz/solar-dashboard-service/pkg/db"
	"liyu1981.xyz/solar-dashboard-service/pkg/mockdata"
)

var fixedNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func GetTestDashboardWithMemorySqliteDialector(t *testing.T) *Dashboard {
	t.Helper()

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	source := mockdata.NewSource(1, func() time.Time { return fixedNow })

	return New(dbInstance, source, classify.DefaultRegistry())
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func findLog(logs []any, match func(map[string]any) bool) bool {
	for _, log := range logs {
		if lobj, ok := log.(map[string]any); ok && match(lobj) {
			return true
		}
	}
	return false
}
