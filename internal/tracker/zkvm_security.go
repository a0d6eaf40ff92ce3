package tracker

var security = []Security{
	{
		ZKVMID:             "sp1",
		ProvableBits:       100,
		ConjecturedBits:    128,
		FormalVerification: StatusInProgress,
		BugBountyURL:       "https://immunefi.com",
		Audits: []Audit{
			{Firm: "Veridise", Date: "2024-10", Scope: "Core circuits and recursion", Findings: Findings{High: 2, Medium: 5, Low: 9}},
			{Firm: "Cantina", Date: "2025-02", Scope: "Public contest, full stack", Findings: Findings{Critical: 1, High: 3, Medium: 7, Low: 14}},
			{Firm: "KALOS", Date: "2025-05", Scope: "Precompiles", Findings: Findings{Medium: 2, Low: 6}},
		},
	},
	{
		ZKVMID:             "risc0",
		ProvableBits:       96,
		ConjecturedBits:    128,
		FormalVerification: StatusInProgress,
		BugBountyURL:       "https://hackenproof.com",
		Audits: []Audit{
			{Firm: "Hexens", Date: "2024-06", Scope: "zkVM circuits", Findings: Findings{High: 1, Medium: 3, Low: 4}},
			{Firm: "Veridise", Date: "2024-11", Scope: "Recursion and Groth16 wrapper", Findings: Findings{Medium: 4, Low: 5}},
		},
	},
	{
		ZKVMID:             "openvm",
		ProvableBits:       100,
		ConjecturedBits:    128,
		FormalVerification: StatusNotStarted,
		Audits: []Audit{
			{Firm: "Cantina", Date: "2025-03", Scope: "Core VM and extensions", Findings: Findings{High: 2, Medium: 6, Low: 11}},
		},
	},
	{
		ZKVMID:             "zisk",
		ProvableBits:       80,
		ConjecturedBits:    128,
		FormalVerification: StatusNotStarted,
		Audits: []Audit{
			{Firm: "Spearbit", Date: "2025-07", Scope: "Executor and state machines", Findings: Findings{High: 1, Medium: 2, Low: 3}},
		},
	},
	{
		ZKVMID:             "airbender",
		ProvableBits:       80,
		ConjecturedBits:    100,
		FormalVerification: StatusNotStarted,
	},
	{
		ZKVMID:             "pico",
		ProvableBits:       96,
		ConjecturedBits:    128,
		FormalVerification: StatusNotStarted,
	},
}

var benchmarks = []Benchmark{
	{ZKVMID: "sp1", Workload: "Mainnet block, 30M gas avg", ProvingTime: 10.3, Hardware: "16x RTX 5090", CostPerProof: 0.04, Date: "2025-08-20"},
	{ZKVMID: "zisk", Workload: "Mainnet block, 30M gas avg", ProvingTime: 7.4, Hardware: "24x RTX 4090", CostPerProof: 0.05, Date: "2025-08-28"},
	{ZKVMID: "airbender", Workload: "Mainnet block, 30M gas avg", ProvingTime: 11.6, Hardware: "8x H100", CostPerProof: 0.07, Date: "2025-07-30"},
	{ZKVMID: "openvm", Workload: "Mainnet block, 30M gas avg", ProvingTime: 14.2, Hardware: "16x RTX 4090", CostPerProof: 0.06, Date: "2025-08-12"},
	{ZKVMID: "risc0", Workload: "Mainnet block, 30M gas avg", ProvingTime: 22.8, Hardware: "32x RTX 4090", CostPerProof: 0.11, Date: "2025-06-30"},
	{ZKVMID: "pico", Workload: "Mainnet block, 30M gas avg", ProvingTime: 18.1, Hardware: "16x RTX 4090", CostPerProof: 0.08, Date: "2025-07-14"},
}
