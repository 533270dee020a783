package domain

// Summary holds the aggregate counts across all categories
type Summary struct {
	TotalTests  int `json:"totalTests"`
	PassedTests int `json:"passedTests"`
	FailedTests int `json:"failedTests"`
	SuccessRate int `json:"successRate"`
}

// PerformanceMetric is a named indicator shown in the report
type PerformanceMetric struct {
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Status Status `json:"status" yaml:"status"`
}

// Artifact points to a file or directory produced by a runner
type Artifact struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	Type string `json:"type" yaml:"type"`
}

// Environment describes the context the report was generated in
type Environment map[string]string

// Report is the complete consolidated report, as written to summary.json
type Report struct {
	Summary     Summary                    `json:"summary"`
	Categories  map[string]CategorySummary `json:"categories"`
	Performance []PerformanceMetric        `json:"performance"`
	Artifacts   []Artifact                 `json:"artifacts"`
	Environment Environment                `json:"environment"`
}
