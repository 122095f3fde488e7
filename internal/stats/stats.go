package stats

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"
)

// Statistic accumulates per-status response counts for the catalog API. The
// ResponseCounts window resets every second; TotalRespCounts never resets.
type Statistic struct {
	mutex           sync.RWMutex
	shutdown        chan struct{}
	Hostname        string
	StartTime       time.Time
	ProcessID       int
	ResponseCounts  map[string]int
	TotalRespCounts map[string]int
	TotalRespTime   time.Duration
	TotalRespSize   int64
}

func NewStatistic() *Statistic {
	hostname, _ := os.Hostname()

	statistic := &Statistic{
		shutdown:        make(chan struct{}, 1),
		StartTime:       time.Now(),
		ProcessID:       os.Getpid(),
		ResponseCounts:  make(map[string]int),
		TotalRespCounts: make(map[string]int),
		Hostname:        hostname,
	}

	go statistic.resetResponseCountsPeriodically()

	return statistic
}

func (stat *Statistic) Close() {
	close(stat.shutdown)
}

func (stat *Statistic) resetResponseCountsPeriodically() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stat.shutdown:
			return
		case <-ticker.C:
			stat.resetResponseCounts()
		}
	}
}

func (stat *Statistic) resetResponseCounts() {
	stat.mutex.Lock()
	defer stat.mutex.Unlock()
	stat.ResponseCounts = make(map[string]int)
}

func (stat *Statistic) WrapHandler(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime, recorder := stat.StartRecording(w)

		handler.ServeHTTP(recorder, r)

		stat.EndRecording(startTime, recorder)
	})
}

func (stat *Statistic) StartRecording(writer http.ResponseWriter) (time.Time, ResponseWriter) {
	return time.Now(), NewResponseRecorder(writer, http.StatusOK)
}

func (stat *Statistic) EndRecording(startTime time.Time, recorder ResponseWriter) {
	stat.Record(startTime, recorder.Status(), recorder.Size())
}

// Record counts one finished response. A size of -1 means nothing was
// written to the body.
func (stat *Statistic) Record(startTime time.Time, status, size int) {
	duration := time.Since(startTime)

	stat.mutex.Lock()
	defer stat.mutex.Unlock()

	if status != 0 {
		statusCode := fmt.Sprintf("%d", status)
		stat.ResponseCounts[statusCode]++
		stat.TotalRespCounts[statusCode]++
		stat.TotalRespTime += duration
		if size > 0 {
			stat.TotalRespSize += int64(size)
		}
	}
}

type StatisticData struct {
	ProcessID              int            `json:"pid"`
	Hostname               string         `json:"hostname"`
	UpTime                 string         `json:"uptime"`
	UpTimeSec              float64        `json:"uptime_sec"`
	Time                   string         `json:"time"`
	TimeUnix               int64          `json:"unixtime"`
	StatusCodeCount        map[string]int `json:"status_code_count"`
	TotalStatusCodeCount   map[string]int `json:"total_status_code_count"`
	ResponseCount          int            `json:"count"`
	TotalResponseCount     int            `json:"total_count"`
	TotalResponseTime      string         `json:"total_response_time"`
	TotalResponseTimeSec   float64        `json:"total_response_time_sec"`
	TotalResponseSize      int64          `json:"total_response_size"`
	AverageResponseSize    int64          `json:"average_response_size"`
	AverageResponseTime    string         `json:"average_response_time"`
	AverageResponseTimeSec float64        `json:"average_response_time_sec"`
}

func (stat *Statistic) GatherData() *StatisticData {
	stat.mutex.RLock()
	defer stat.mutex.RUnlock()

	responseCounts := make(map[string]int, len(stat.ResponseCounts))
	totalResponseCounts := make(map[string]int, len(stat.TotalRespCounts))

	currentTime := time.Now()
	uptime := currentTime.Sub(stat.StartTime)

	responseCount := copyCounts(stat.ResponseCounts, responseCounts)
	totalCount := copyCounts(stat.TotalRespCounts, totalResponseCounts)

	avgResponseTime, avgResponseSize := stat.calculateAverages(totalCount)

	return &StatisticData{
		ProcessID:              stat.ProcessID,
		Hostname:               stat.Hostname,
		UpTime:                 uptime.String(),
		UpTimeSec:              uptime.Seconds(),
		Time:                   currentTime.String(),
		TimeUnix:               currentTime.Unix(),
		StatusCodeCount:        responseCounts,
		TotalStatusCodeCount:   totalResponseCounts,
		ResponseCount:          responseCount,
		TotalResponseCount:     totalCount,
		TotalResponseTime:      stat.TotalRespTime.String(),
		TotalResponseTimeSec:   stat.TotalRespTime.Seconds(),
		TotalResponseSize:      stat.TotalRespSize,
		AverageResponseSize:    avgResponseSize,
		AverageResponseTime:    avgResponseTime.String(),
		AverageResponseTimeSec: avgResponseTime.Seconds(),
	}
}

func (stat *Statistic) calculateAverages(count int) (time.Duration, int64) {
	if count == 0 {
		return 0, 0
	}
	return stat.TotalRespTime / time.Duration(count), stat.TotalRespSize / int64(count)
}

func copyCounts(src, dest map[string]int) (sum int) {
	for key, count := range src {
		dest[key] = count
		sum += count
	}
	return sum
}
