package tracker

var categories = []Category{
	{
		ID:          "real-time-proving",
		Name:        "Real-time proving",
		Description: "Prove every mainnet block inside a single slot on hardware a solo staker could plausibly run.",
		Icon:        "timer",
	},
	{
		ID:          "client-integration",
		Name:        "Client integration",
		Description: "Compile each execution client into a guest program that runs unmodified inside the zkVMs.",
		Icon:        "boxes",
	},
	{
		ID:          "security",
		Name:        "Security",
		Description: "Reach 128 bits of provable security, finish independent audits and formally verify the critical circuits.",
		Icon:        "shield",
	},
	{
		ID:          "standards",
		Name:        "Standards",
		Description: "Agree on witness formats, proof formats and the protocol changes that let validators consume proofs.",
		Icon:        "file-text",
	},
	{
		ID:          "validator-adoption",
		Name:        "Validator adoption",
		Description: "Let attesters verify proofs instead of re-executing blocks, starting with an opt-in phase.",
		Icon:        "users",
	},
}

var milestones = []Milestone{
	{
		ID:          "rtp-latency",
		CategoryID:  "real-time-proving",
		Name:        "Sub-slot proving latency",
		Description: "Median proving time for mainnet blocks below 12 seconds.",
		Status:      StatusInProgress,
		Metric:      &Metric{Current: 9.4, Target: 12, Unit: "s"},
		Verification: &Verification{
			Date:     "2025-09-02",
			Verifier: "ethproofs.org",
			Source:   "https://ethproofs.org",
		},
	},
	{
		ID:          "rtp-coverage",
		CategoryID:  "real-time-proving",
		Name:        "Block coverage",
		Description: "Share of mainnet blocks proven in real time over a 30 day window.",
		Status:      StatusInProgress,
		Metric:      &Metric{Current: 92, Target: 99, Unit: "%"},
	},
	{
		ID:          "rtp-power",
		CategoryID:  "real-time-proving",
		Name:        "Home proving power budget",
		Description: "Real-time proving on a cluster drawing at most 10 kW.",
		Status:      StatusInProgress,
		Metric:      &Metric{Current: 16, Target: 10, Unit: "kW"},
	},
	{
		ID:          "ci-guests",
		CategoryID:  "client-integration",
		Name:        "Guest programs for every client",
		Description: "Each production execution client ships a guest program built from its main branch.",
		Status:      StatusInProgress,
		Metric:      &Metric{Current: 4, Target: 6, Unit: "clients"},
	},
	{
		ID:          "ci-multi-zkvm",
		CategoryID:  "client-integration",
		Name:        "Multi-zkVM targets",
		Description: "Every guest program builds for at least two zkVMs.",
		Status:      StatusInProgress,
	},
	{
		ID:          "sec-128",
		CategoryID:  "security",
		Name:        "128-bit provable security",
		Description: "Soundness proven without relying on proximity-gap conjectures.",
		Status:      StatusNotStarted,
	},
	{
		ID:          "sec-audits",
		CategoryID:  "security",
		Name:        "Independent audits",
		Description: "At least two independent audits per zkVM with all critical findings resolved.",
		Status:      StatusInProgress,
		Metric:      &Metric{Current: 7, Target: 12, Unit: "audits"},
	},
	{
		ID:          "sec-formal",
		CategoryID:  "security",
		Name:        "Formal verification of RISC-V circuits",
		Description: "Machine-checked equivalence between the RV64IM specification and the constraint system.",
		Status:      StatusInProgress,
	},
	{
		ID:          "std-witness",
		CategoryID:  "standards",
		Name:        "Execution witness format",
		Description: "A client-agnostic stateless witness format served over the engine API.",
		Status:      StatusComplete,
		Verification: &Verification{
			Date:     "2025-06-18",
			Verifier: "ACDE call",
			Source:   "https://github.com/ethereum/execution-apis",
		},
	},
	{
		ID:          "std-proof-format",
		CategoryID:  "standards",
		Name:        "Proof envelope",
		Description: "A versioned proof envelope that names the zkVM, guest program and verification key.",
		Status:      StatusInProgress,
	},
	{
		ID:          "va-optional-proofs",
		CategoryID:  "validator-adoption",
		Name:        "Optional proofs",
		Description: "Consensus clients accept proofs gossiped alongside blocks and verify them in place of execution.",
		Status:      StatusNotStarted,
	},
	{
		ID:          "va-diversity",
		CategoryID:  "validator-adoption",
		Name:        "Proof diversity",
		Description: "Validators can require k-of-n proofs from distinct zkVMs before attesting.",
		Status:      StatusBlocked,
	},
}

var roadmap = []RoadmapItem{
	{
		ID:             "witness-generation",
		Title:          "Execution witness generation",
		Description:    "Clients produce the stateless witness for each block through debug_executionWitness.",
		Category:       "standards",
		Priority:       PriorityCritical,
		Status:         StatusComplete,
		TargetDate:     "2025-Q2",
		RelatedClients: []string{"reth", "geth", "nethermind"},
	},
	{
		ID:             "guest-reth",
		Title:          "Reth guest program",
		Description:    "Stateless Reth compiled for RISC-V and running inside multiple zkVMs.",
		Category:       "client-integration",
		Priority:       PriorityHigh,
		Status:         StatusComplete,
		TargetDate:     "2025-Q2",
		Dependencies:   []string{"witness-generation"},
		RelatedClients: []string{"reth"},
		RelatedZKVMs:   []string{"sp1", "risc0", "openvm", "zisk"},
	},
	{
		ID:             "guest-geth",
		Title:          "Geth guest program",
		Description:    "Port of go-ethereum's stateless executor to a RISC-V guest.",
		Category:       "client-integration",
		Priority:       PriorityHigh,
		Status:         StatusInProgress,
		TargetDate:     "2025-Q4",
		Dependencies:   []string{"witness-generation"},
		RelatedClients: []string{"geth"},
		RelatedZKVMs:   []string{"zisk", "sp1"},
	},
	{
		ID:             "guest-nethermind",
		Title:          "Nethermind guest program",
		Description:    "Ahead-of-time compiled .NET guest running the Nethermind state transition.",
		Category:       "client-integration",
		Priority:       PriorityMedium,
		Status:         StatusInProgress,
		TargetDate:     "2026-Q1",
		Dependencies:   []string{"witness-generation"},
		RelatedClients: []string{"nethermind"},
		RelatedZKVMs:   []string{"zisk"},
	},
	{
		ID:             "guest-ethrex",
		Title:          "Ethrex guest program",
		Description:    "Ethrex's Rust state transition packaged for the zkVM toolchains.",
		Category:       "client-integration",
		Priority:       PriorityMedium,
		Status:         StatusComplete,
		TargetDate:     "2025-Q3",
		Dependencies:   []string{"witness-generation"},
		RelatedClients: []string{"ethrex"},
		RelatedZKVMs:   []string{"sp1", "risc0"},
	},
	{
		ID:           "gpu-clusters",
		Title:        "GPU cluster provers",
		Description:  "Distributed proving across commodity GPU clusters with work stealing.",
		Category:     "real-time-proving",
		Priority:     PriorityHigh,
		Status:       StatusComplete,
		TargetDate:   "2025-Q2",
		RelatedZKVMs: []string{"sp1", "zisk", "airbender"},
	},
	{
		ID:           "real-time-mainnet",
		Title:        "Real-time proving of mainnet",
		Description:  "Prove 99% of mainnet blocks within the slot using shipped guest programs.",
		Category:     "real-time-proving",
		Priority:     PriorityCritical,
		Status:       StatusInProgress,
		TargetDate:   "2025-Q4",
		Dependencies: []string{"gpu-clusters", "guest-reth"},
		RelatedZKVMs: []string{"sp1", "zisk", "airbender", "openvm"},
	},
	{
		ID:           "home-proving",
		Title:        "Home proving",
		Description:  "Real-time proving on an on-premise rig under 10 kW and USD 100k capital cost.",
		Category:     "real-time-proving",
		Priority:     PriorityHigh,
		Status:       StatusNotStarted,
		TargetDate:   "2026-Q3",
		Dependencies: []string{"real-time-mainnet"},
	},
	{
		ID:          "riscv-formal",
		Title:       "Formally verified RISC-V circuits",
		Description: "Lean proofs that zkVM constraints implement the RV64IM semantics.",
		Category:    "security",
		Priority:    PriorityHigh,
		Status:      StatusInProgress,
		TargetDate:  "2026-Q2",
	},
	{
		ID:           "provable-128",
		Title:        "128-bit provable security",
		Description:  "Move proof systems off conjectured soundness to proven 128-bit security.",
		Category:     "security",
		Priority:     PriorityCritical,
		Status:       StatusNotStarted,
		TargetDate:   "2026-Q2",
		RelatedZKVMs: []string{"sp1", "risc0", "openvm", "zisk", "airbender"},
	},
	{
		ID:           "proof-envelope",
		Title:        "Standard proof envelope",
		Description:  "Versioned container for proofs, verification keys and guest identifiers.",
		Category:     "standards",
		Priority:     PriorityHigh,
		Status:       StatusInProgress,
		TargetDate:   "2025-Q4",
		Dependencies: []string{"witness-generation"},
	},
	{
		ID:           "optional-proofs-eip",
		Title:        "Optional proofs EIP",
		Description:  "Specify how consensus clients receive and verify execution proofs.",
		Category:     "standards",
		Priority:     PriorityCritical,
		Status:       StatusInProgress,
		TargetDate:   "2026-Q1",
		Dependencies: []string{"proof-envelope"},
	},
	{
		ID:           "cl-verification",
		Title:        "Consensus client proof verification",
		Description:  "Consensus clients verify proofs gossiped on a dedicated subnet.",
		Category:     "validator-adoption",
		Priority:     PriorityHigh,
		Status:       StatusNotStarted,
		TargetDate:   "2026-Q2",
		Dependencies: []string{"optional-proofs-eip", "real-time-mainnet"},
	},
	{
		ID:           "multi-proof-attestation",
		Title:        "Multi-proof attestation",
		Description:  "Attesters require proofs from several zkVMs before voting.",
		Category:     "validator-adoption",
		Priority:     PriorityMedium,
		Status:       StatusBlocked,
		TargetDate:   "2026-Q4",
		Dependencies: []string{"cl-verification", "provable-128", "riscv-formal"},
	},
}

var team = []TeamMember{
	{Name: "Alex Rivera", Role: "Coordinator", Focus: "Roadmap and client outreach", GitHub: "arivera"},
	{Name: "Sam Okafor", Role: "Research", Focus: "Proof system security", GitHub: "sokafor"},
	{Name: "Jordan Lee", Role: "Engineering", Focus: "Guest programs and witness formats", GitHub: "jlee-eth"},
	{Name: "Priya Natarajan", Role: "Engineering", Focus: "Benchmarking and prover infrastructure", GitHub: "pnatarajan"},
	{Name: "Mika Virtanen", Role: "Formal methods", Focus: "RISC-V circuit verification", GitHub: "mvirtanen"},
}
