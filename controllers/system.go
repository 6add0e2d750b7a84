package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"

	"github.com/diyorbe-beep/kino11111/utils"
)

type SystemStatus struct {
	CPUUsage      float64        `json:"cpu_usage"`
	MemoryTotal   uint64         `json:"memory_total"`
	MemoryUsed    uint64         `json:"memory_used"`
	MemoryUsage   float64        `json:"memory_usage"`
	DiskTotal     uint64         `json:"disk_total"`
	DiskUsed      uint64         `json:"disk_used"`
	DiskUsage     float64        `json:"disk_usage"`
	NetworkStatus NetworkMetrics `json:"network_status"`
	Uptime        float64        `json:"uptime"`
}

type NetworkMetrics struct {
	RxBytes     uint64 `json:"rx_bytes"`
	TxBytes     uint64 `json:"tx_bytes"`
	Connections int    `json:"connections"`
}

// GetSystemStatus godoc
// @Summary      Get host resource usage
// @Description  Live CPU, memory, disk and network figures for the admin panel
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  utils.Envelope
// @Router       /admin/system/status [get]
func GetSystemStatus(c *gin.Context) {
	status := SystemStatus{}

	if uptime, err := host.Uptime(); err == nil {
		status.Uptime = float64(uptime)
	}

	cpuPercent, err := cpu.Percent(time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		status.CPUUsage = cpuPercent[0]
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		status.MemoryTotal = memInfo.Total
		status.MemoryUsed = memInfo.Used
		status.MemoryUsage = memInfo.UsedPercent
	}

	if diskInfo, err := disk.Usage("/"); err == nil {
		status.DiskTotal = diskInfo.Total
		status.DiskUsed = diskInfo.Used
		status.DiskUsage = diskInfo.UsedPercent
	}

	networkMetrics := NetworkMetrics{}
	if netStats, err := net.IOCounters(false); err == nil && len(netStats) > 0 {
		networkMetrics.RxBytes = netStats[0].BytesRecv
		networkMetrics.TxBytes = netStats[0].BytesSent
	}
	if connections, err := net.Connections("all"); err == nil {
		networkMetrics.Connections = len(connections)
	}
	status.NetworkStatus = networkMetrics

	utils.Success(c, "SUCCESS_MESSAGE", status)
}
