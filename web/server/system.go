package server

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// SystemInfo describes the host the renders run on
type SystemInfo struct {
	CPUModel       string  `json:"cpuModel"`
	ClockGHz       float64 `json:"clockGHz"`
	PhysicalCores  int     `json:"physicalCores"`
	LogicalCores   int     `json:"logicalCores"`
	TotalRAMGB     uint64  `json:"totalRamGb"`
	DefaultWorkers int     `json:"defaultWorkers"` // Bands used when a request asks for 0 workers
}

// getSystemInfo collects what the host reports. Fields the platform cannot
// provide are left zero.
func (s *Server) getSystemInfo() SystemInfo {
	info := SystemInfo{DefaultWorkers: runtime.NumCPU()}

	if cpuInfo, err := cpu.Info(); err != nil {
		s.logger.Debugf("cpu info unavailable: %v", err)
	} else if len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
		info.ClockGHz = cpuInfo[0].Mhz / 1000
	}

	if n, err := cpu.Counts(false); err == nil {
		info.PhysicalCores = n
	}
	if n, err := cpu.Counts(true); err == nil {
		info.LogicalCores = n
	}

	if memInfo, err := mem.VirtualMemory(); err != nil {
		s.logger.Debugf("memory info unavailable: %v", err)
	} else {
		info.TotalRAMGB = memInfo.Total / (1024 * 1024 * 1024)
	}
	return info
}

func (s *Server) handleSystem(c echo.Context) error {
	return c.JSON(http.StatusOK, s.getSystemInfo())
}
