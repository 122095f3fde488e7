package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

func (h handlers) sysStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		memStats := new(runtime.MemStats)
		runtime.ReadMemStats(memStats)
		c.JSON(http.StatusOK, gin.H{
			"time":            now.UnixNano(),
			"go_version":      runtime.Version(),
			"go_os":           runtime.GOOS,
			"go_arch":         runtime.GOARCH,
			"cpu_num":         runtime.NumCPU(),
			"goroutine_num":   runtime.NumGoroutine(),
			"go_max_procs":    runtime.GOMAXPROCS(0),
			"mem_alloc":       memStats.Alloc,
			"mem_total_alloc": memStats.TotalAlloc,
			"mem_sys":         memStats.Sys,
		})
	}
}
