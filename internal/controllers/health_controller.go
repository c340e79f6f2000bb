package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/services"
	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

type HealthController struct {
	service   services.NFTServiceInterface
	chainName string
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Backend       string  `json:"backend"`
	Chain         string  `json:"chain"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Backend:       hc.service.Backend(),
		Chain:         hc.chainName,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(conf *structures.Config, service services.NFTServiceInterface) *HealthController {
	return &HealthController{
		service:   service,
		chainName: conf.Ledger.ChainName,
		startTime: time.Now(),
	}
}
