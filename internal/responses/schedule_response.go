package responses

type ProcessResponse struct {
	Name                 string  `json:"name"`
	ArrivalTime          int     `json:"arrival_time"`
	ServiceTime          int     `json:"service_time"`
	Completed            bool    `json:"completed"`
	FinishTime           int     `json:"finish_time"`
	TurnAroundTime       float64 `json:"turn_around_time"`
	NormalizedTurnAround float64 `json:"normalized_turn_around"`
	WaitingTime          float64 `json:"waiting_time"`
	ResponseTime         float64 `json:"response_time"`
}

type TimelineRow struct {
	Name  string `json:"name"`
	Cells string `json:"cells"`
}

type ScheduleResponse struct {
	Algorithm                   string            `json:"algorithm"`
	Quantum                     int               `json:"quantum,omitempty"`
	TotalTime                   float64           `json:"total_time"`
	IdleTime                    float64           `json:"idle_time"`
	AverageWaitingTime          float64           `json:"average_waiting_time"`
	AverageResponseTime         float64           `json:"average_response_time"`
	AverageTurnAroundTime       float64           `json:"average_turn_around_time"`
	AverageNormalizedTurnAround float64           `json:"average_normalized_turn_around"`
	CpuUtilization              float64           `json:"cpu_utilization"`
	CpuThroughput               float64           `json:"cpu_throughput"`
	Details                     []ProcessResponse `json:"details"`
	Timeline                    []TimelineRow     `json:"timeline,omitempty"`
}

type AlgorithmResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantized bool   `json:"quantized"`
}
