package model

type ConvertInput struct {
	Date string `json:"date" form:"date"`
}

type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

type WorkdayCount struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Workdays int    `json:"workdays"`
}

type NextWorkday struct {
	Date        string `json:"date"`
	NextWorkday string `json:"nextWorkday"`
}
