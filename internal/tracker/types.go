package tracker

import "strings"

// Status is the progress state of a milestone or roadmap item.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusComplete   Status = "complete"
	StatusBlocked    Status = "blocked"
)

var legacyStatuses = map[string]Status{
	"planned":   StatusNotStarted,
	"pending":   StatusNotStarted,
	"todo":      StatusNotStarted,
	"active":    StatusInProgress,
	"ongoing":   StatusInProgress,
	"partial":   StatusInProgress,
	"done":      StatusComplete,
	"completed": StatusComplete,
	"shipped":   StatusComplete,
}

// Normalize maps legacy status spellings onto the four canonical states.
// Anything unrecognised counts as not started.
func (s Status) Normalize() Status {
	key := strings.ToLower(strings.TrimSpace(string(s)))
	switch Status(key) {
	case StatusNotStarted, StatusInProgress, StatusComplete, StatusBlocked:
		return Status(key)
	}
	if mapped, ok := legacyStatuses[key]; ok {
		return mapped
	}
	return StatusNotStarted
}

// Label returns a human readable form of the status.
func (s Status) Label() string {
	switch s.Normalize() {
	case StatusInProgress:
		return "In progress"
	case StatusComplete:
		return "Complete"
	case StatusBlocked:
		return "Blocked"
	default:
		return "Not started"
	}
}

// Priority ranks roadmap items.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank orders priorities, lower is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// Category is a dashboard section of the track.
type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// Metric is an optional numeric measure attached to a milestone.
type Metric struct {
	Current float64
	Target  float64
	Unit    string
}

// Verification records who confirmed a milestone and where.
type Verification struct {
	Date     string
	Verifier string
	Source   string
}

// Milestone is a tracked unit of progress inside a category.
type Milestone struct {
	ID           string
	CategoryID   string
	Name         string
	Description  string
	Status       Status
	Metric       *Metric
	Verification *Verification
}

// CommonMilestone is a checklist entry shared by every client or every zkVM.
type CommonMilestone struct {
	ID          string
	Name        string
	Description string
	Metric      *Metric
}

// RoadmapItem is a planned workstream deliverable.
type RoadmapItem struct {
	ID             string
	Title          string
	Description    string
	Category       string
	Priority       Priority
	Status         Status
	TargetDate     string
	Dependencies   []string
	RelatedClients []string
	RelatedZKVMs   []string
}

// Client is an Ethereum execution client participating in the effort.
type Client struct {
	ID                string
	Name              string
	Language          string
	Description       string
	Repository        string
	Website           string
	GuestPrograms     []string
	MilestoneStatuses map[string]Status
}

// GuestProgram is a client codebase compiled to run inside one or more zkVMs.
type GuestProgram struct {
	ID                string
	Name              string
	ClientID          string
	ZKVMs             []string
	Repository        string
	MilestoneStatuses map[string]Status
}

// ZKVM is a general-purpose zero-knowledge virtual machine.
type ZKVM struct {
	ID                string
	Name              string
	Organization      string
	ISA               string
	ProofSystem       string
	Language          string
	Repository        string
	Website           string
	Description       string
	MilestoneStatuses map[string]Status
}

// Findings counts audit findings by severity.
type Findings struct {
	Critical int
	High     int
	Medium   int
	Low      int
}

// Total returns the number of findings across severities.
func (f Findings) Total() int {
	return f.Critical + f.High + f.Medium + f.Low
}

// Audit is a completed third-party review of a zkVM.
type Audit struct {
	Firm      string
	Date      string
	Scope     string
	ReportURL string
	Findings  Findings
}

// Security is the security posture of one zkVM.
type Security struct {
	ZKVMID             string
	ProvableBits       int
	ConjecturedBits    int
	FormalVerification Status
	BugBountyURL       string
	Audits             []Audit
}

// Benchmark is a measured proving run.
type Benchmark struct {
	ZKVMID       string
	Workload     string
	ProvingTime  float64
	Hardware     string
	CostPerProof float64
	Date         string
}

// TeamMember is a contributor listed on the about page.
type TeamMember struct {
	Name   string
	Role   string
	Focus  string
	GitHub string
}

// Dataset bundles every static collection the site renders.
type Dataset struct {
	Categories       []Category
	Milestones       []Milestone
	Roadmap          []RoadmapItem
	ClientMilestones []CommonMilestone
	ZKVMMilestones   []CommonMilestone
	Clients          []Client
	GuestPrograms    []GuestProgram
	ZKVMs            []ZKVM
	Security         []Security
	Benchmarks       []Benchmark
	Team             []TeamMember
}
