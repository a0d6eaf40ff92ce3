package tracker

var clientMilestones = []CommonMilestone{
	{ID: "stateless-execution", Name: "Stateless execution", Description: "Executes a block from the execution witness alone."},
	{ID: "riscv-build", Name: "RISC-V build", Description: "The state transition compiles for rv64im without patches to upstream."},
	{ID: "guest-program", Name: "Guest program published", Description: "A reproducible guest program is published and versioned."},
	{ID: "mainnet-proving", Name: "Mainnet proving", Description: "Proves consecutive mainnet blocks on at least one zkVM.", Metric: &Metric{Current: 0, Target: 7200, Unit: "blocks/day"}},
	{ID: "multi-zkvm", Name: "Multiple zkVMs", Description: "The same guest source proves on two or more zkVMs."},
	{ID: "ci-coverage", Name: "Continuous proving in CI", Description: "Every merge to main is proven against a fixed block corpus."},
}

var zkvmMilestones = []CommonMilestone{
	{ID: "rv64im", Name: "RV64IM support", Description: "Targets the 64-bit RISC-V base ISA with the M extension."},
	{ID: "real-time", Name: "Real-time proving", Description: "Proves a mainnet block within 12 seconds.", Metric: &Metric{Target: 12, Unit: "s"}},
	{ID: "open-source", Name: "Open source prover", Description: "The full prover, including GPU kernels, is open source."},
	{ID: "security-128", Name: "128-bit security", Description: "Reaches 128 bits of provable security."},
	{ID: "audited", Name: "Audited", Description: "Circuits and verifier audited by at least two firms."},
	{ID: "formal-verification", Name: "Formal verification", Description: "RISC-V constraints formally verified against the ISA specification."},
	{ID: "onchain-verifier", Name: "On-chain verifier", Description: "Ships a verifier contract or precompile-friendly wrapper."},
}

var clients = []Client{
	{
		ID:            "reth",
		Name:          "Reth",
		Language:      "Rust",
		Description:   "Modular execution client whose stateless crate is the most widely used guest program today.",
		Repository:    "https://github.com/paradigmxyz/reth",
		Website:       "https://reth.rs",
		GuestPrograms: []string{"reth-stateless"},
		MilestoneStatuses: map[string]Status{
			"stateless-execution": StatusComplete,
			"riscv-build":         StatusComplete,
			"guest-program":       StatusComplete,
			"mainnet-proving":     StatusComplete,
			"multi-zkvm":          StatusComplete,
			"ci-coverage":         StatusInProgress,
		},
	},
	{
		ID:            "geth",
		Name:          "Geth",
		Language:      "Go",
		Description:   "The go-ethereum client; its guest program targets RISC-V through a TinyGo-compatible subset.",
		Repository:    "https://github.com/ethereum/go-ethereum",
		Website:       "https://geth.ethereum.org",
		GuestPrograms: []string{"geth-stateless"},
		MilestoneStatuses: map[string]Status{
			"stateless-execution": StatusComplete,
			"riscv-build":         StatusInProgress,
			"guest-program":       StatusInProgress,
			"mainnet-proving":     StatusNotStarted,
			"multi-zkvm":          StatusNotStarted,
		},
	},
	{
		ID:            "nethermind",
		Name:          "Nethermind",
		Language:      "C#",
		Description:   "A .NET execution client exploring ahead-of-time compilation to RISC-V.",
		Repository:    "https://github.com/NethermindEth/nethermind",
		Website:       "https://nethermind.io",
		GuestPrograms: []string{"nethermind-aot"},
		MilestoneStatuses: map[string]Status{
			"stateless-execution": StatusComplete,
			"riscv-build":         StatusInProgress,
			"guest-program":       StatusNotStarted,
			"mainnet-proving":     StatusNotStarted,
		},
	},
	{
		ID:          "besu",
		Name:        "Besu",
		Language:    "Java",
		Description: "An enterprise-friendly Java client; zk work is at the research stage.",
		Repository:  "https://github.com/hyperledger/besu",
		Website:     "https://besu.hyperledger.org",
		MilestoneStatuses: map[string]Status{
			"stateless-execution": StatusInProgress,
			"riscv-build":         StatusBlocked,
		},
	},
	{
		ID:            "erigon",
		Name:          "Erigon",
		Language:      "Go",
		Description:   "An archive-oriented Go client sharing much of its EVM with go-ethereum.",
		Repository:    "https://github.com/erigontech/erigon",
		Website:       "https://erigon.tech",
		GuestPrograms: []string{"erigon-stateless"},
		MilestoneStatuses: map[string]Status{
			"stateless-execution": StatusComplete,
			"riscv-build":         StatusInProgress,
			"guest-program":       StatusInProgress,
		},
	},
	{
		ID:            "ethrex",
		Name:          "Ethrex",
		Language:      "Rust",
		Description:   "A minimalist Rust client designed with proving in mind from day one.",
		Repository:    "https://github.com/lambdaclass/ethrex",
		Website:       "https://ethrex.xyz",
		GuestPrograms: []string{"ethrex-prover"},
		MilestoneStatuses: map[string]Status{
			"stateless-execution": StatusComplete,
			"riscv-build":         StatusComplete,
			"guest-program":       StatusComplete,
			"mainnet-proving":     StatusComplete,
			"multi-zkvm":          StatusComplete,
			"ci-coverage":         StatusComplete,
		},
	},
}

var guestPrograms = []GuestProgram{
	{
		ID:         "reth-stateless",
		Name:       "reth-stateless",
		ClientID:   "reth",
		ZKVMs:      []string{"sp1", "risc0", "openvm", "zisk", "pico", "airbender"},
		Repository: "https://github.com/paradigmxyz/reth/tree/main/crates/stateless",
		MilestoneStatuses: map[string]Status{
			"guest-program":   StatusComplete,
			"mainnet-proving": StatusComplete,
		},
	},
	{
		ID:         "geth-stateless",
		Name:       "geth stateless guest",
		ClientID:   "geth",
		ZKVMs:      []string{"zisk"},
		Repository: "https://github.com/ethereum/go-ethereum",
		MilestoneStatuses: map[string]Status{
			"guest-program": StatusInProgress,
		},
	},
	{
		ID:         "nethermind-aot",
		Name:       "Nethermind AOT guest",
		ClientID:   "nethermind",
		ZKVMs:      []string{"zisk"},
		Repository: "https://github.com/NethermindEth/nethermind",
		MilestoneStatuses: map[string]Status{
			"guest-program": StatusNotStarted,
		},
	},
	{
		ID:         "erigon-stateless",
		Name:       "Erigon stateless guest",
		ClientID:   "erigon",
		ZKVMs:      []string{"zisk"},
		Repository: "https://github.com/erigontech/erigon",
		MilestoneStatuses: map[string]Status{
			"guest-program": StatusInProgress,
		},
	},
	{
		ID:         "ethrex-prover",
		Name:       "ethrex prover",
		ClientID:   "ethrex",
		ZKVMs:      []string{"sp1", "risc0"},
		Repository: "https://github.com/lambdaclass/ethrex",
		MilestoneStatuses: map[string]Status{
			"guest-program":   StatusComplete,
			"mainnet-proving": StatusComplete,
		},
	},
}

var zkvms = []ZKVM{
	{
		ID:           "sp1",
		Name:         "SP1",
		Organization: "Succinct",
		ISA:          "RV32IM",
		ProofSystem:  "STARK (Plonky3) wrapped in Groth16/PLONK",
		Language:     "Rust",
		Repository:   "https://github.com/succinctlabs/sp1",
		Website:      "https://succinct.xyz",
		Description:  "A general-purpose zkVM with precompiles for common Ethereum cryptography.",
		MilestoneStatuses: map[string]Status{
			"rv64im":           StatusInProgress,
			"real-time":        StatusComplete,
			"open-source":      StatusComplete,
			"security-128":     StatusInProgress,
			"audited":          StatusComplete,
			"onchain-verifier": StatusComplete,
		},
	},
	{
		ID:           "risc0",
		Name:         "RISC Zero",
		Organization: "RISC Zero",
		ISA:          "RV32IM",
		ProofSystem:  "STARK with Groth16 wrapping",
		Language:     "Rust",
		Repository:   "https://github.com/risc0/risc0",
		Website:      "https://risczero.com",
		Description:  "One of the earliest production RISC-V zkVMs, with formal verification of its circuits under way.",
		MilestoneStatuses: map[string]Status{
			"rv64im":              StatusNotStarted,
			"real-time":           StatusInProgress,
			"open-source":         StatusComplete,
			"security-128":        StatusInProgress,
			"audited":             StatusComplete,
			"formal-verification": StatusInProgress,
			"onchain-verifier":    StatusComplete,
		},
	},
	{
		ID:           "openvm",
		Name:         "OpenVM",
		Organization: "Axiom",
		ISA:          "RV32IM",
		ProofSystem:  "STARK (Plonky3)",
		Language:     "Rust",
		Repository:   "https://github.com/openvm-org/openvm",
		Website:      "https://openvm.dev",
		Description:  "A modular zkVM framework with extensible instruction sets.",
		MilestoneStatuses: map[string]Status{
			"real-time":        StatusInProgress,
			"open-source":      StatusComplete,
			"audited":          StatusComplete,
			"onchain-verifier": StatusComplete,
		},
	},
	{
		ID:           "zisk",
		Name:         "ZisK",
		Organization: "ZisK",
		ISA:          "RV64IMA",
		ProofSystem:  "STARK (PIL2)",
		Language:     "Rust",
		Repository:   "https://github.com/0xPolygonHermez/zisk",
		Website:      "https://zisk.technology",
		Description:  "A 64-bit zkVM focused on low-latency distributed proving.",
		MilestoneStatuses: map[string]Status{
			"rv64im":       StatusComplete,
			"real-time":    StatusComplete,
			"open-source":  StatusComplete,
			"security-128": StatusNotStarted,
			"audited":      StatusInProgress,
		},
	},
	{
		ID:           "airbender",
		Name:         "Airbender",
		Organization: "ZKsync",
		ISA:          "RV32IM",
		ProofSystem:  "STARK over Mersenne31",
		Language:     "Rust",
		Repository:   "https://github.com/matter-labs/zksync-airbender",
		Website:      "https://zksync.io",
		Description:  "A GPU-first prover optimised for single-machine throughput.",
		MilestoneStatuses: map[string]Status{
			"real-time":   StatusComplete,
			"open-source": StatusComplete,
			"audited":     StatusInProgress,
		},
	},
	{
		ID:           "pico",
		Name:         "Pico",
		Organization: "Brevis",
		ISA:          "RV32IM",
		ProofSystem:  "STARK (Plonky3)",
		Language:     "Rust",
		Repository:   "https://github.com/brevis-network/pico",
		Website:      "https://brevis.network",
		Description:  "A modular zkVM with coprocessor-style extensions.",
		MilestoneStatuses: map[string]Status{
			"real-time":   StatusInProgress,
			"open-source": StatusComplete,
		},
	},
}
