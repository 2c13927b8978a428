package config

// Default returns the compiled-in configuration. The taxonomy tables mirror
// the curated catalog taxonomy; user config can replace any part wholesale.
func Default() Config {
	return Config{
		Site: SiteConfig{
			Project:     "awesome-code-docs",
			Description: "Deep-dive tutorials for popular open-source AI, developer-tooling, and data platforms.",
			RepoURL:     "https://github.com/johnxie/awesome-code-docs",
			Branch:      "main",
		},
		Output: OutputConfig{
			IndexJSON:     "discoverability/tutorial-index.json",
			DirectoryMD:   "discoverability/tutorial-directory.md",
			IntentMapMD:   "discoverability/search-intent-map.md",
			QueryHubMD:    "discoverability/query-hub.md",
			QueryCoverage: "discoverability/query-coverage.json",
			ItemListJSON:  "discoverability/tutorial-itemlist.schema.json",
			LLMs:          "llms.txt",
			LLMsFull:      "llms-full.txt",
			RunManifest:   "discoverability/run-manifest.json",
		},
		Audit: AuditConfig{
			FreshMaxAgeDays: 30,
			StaleAfterDays:  90,
			StalenessTargets: []string{
				"README.md",
				"tutorials/README.md",
				"tutorials/*/index.md",
				"categories/*.md",
				"discoverability/*.md",
			},
			ReleaseClaimTargets: []string{
				"tutorials/*/index.md",
			},
			FreshnessHints: []string{
				"verified",
				"last updated",
				"last verified",
				"snapshot",
				"auto-updated",
				"generated_on",
				"generated on",
			},
			ReleaseClaimHints: []string{
				"latest release",
				"recent activity",
				"latest visible tag",
				"recent push activity",
				"updated on",
			},
		},
		Taxonomy: defaultTaxonomy(),
	}
}

func defaultTaxonomy() Taxonomy {
	return Taxonomy{
		Stopwords: []string{
			"a", "an", "and", "the", "of", "for", "to", "in", "on", "with",
			"by", "from", "how", "your", "you", "guide", "tutorial", "using",
			"use", "learn", "build", "deep", "dive", "covering", "production",
			"platform", "system", "systems", "project", "practical", "across",
			"into", "through", "about", "this", "that", "their", "its", "our",
			"these", "those", "including",
		},
		NoiseTokens: []string{
			"github", "com", "johnxie", "main", "tree", "blob", "docs", "repo",
		},
		SummaryNoise: []string{
			"important notice", "project:", "latest release", "what's new",
			"deprecated", "sunset",
		},

		// Ordered: most specific ecosystems first; the first rule with any
		// matching term wins.
		ClusterRules: []ClusterRule{
			{
				ID:    "taskade-ecosystem",
				Name:  "Taskade Ecosystem",
				Terms: []string{"taskade", "genesis", "workspace dna", "living dna"},
			},
			{
				ID:   "mcp-ecosystem",
				Name: "MCP Ecosystem",
				Terms: []string{
					"mcp", "model context protocol", "fastmcp", "inspector", "registry",
				},
			},
			{
				ID:   "rag-and-retrieval",
				Name: "RAG and Retrieval",
				Terms: []string{
					"rag", "retrieval", "vector", "embedding", "llamaindex",
					"haystack", "chroma", "lancedb", "mem0",
				},
			},
			{
				ID:   "llm-infra-serving",
				Name: "LLM Infrastructure and Serving",
				Terms: []string{
					"ollama", "vllm", "llama.cpp", "llama-cpp", "serving",
					"inference", "litellm", "localai",
				},
			},
			{
				ID:   "ai-coding-agents",
				Name: "AI Coding Agents",
				Terms: []string{
					"codex", "cline", "roo", "openhands", "sweep", "continue",
					"aider", "agent", "coding", "claude code", "gemini cli",
				},
			},
			{
				ID:   "ai-app-frameworks",
				Name: "AI App Frameworks",
				Terms: []string{
					"next.js", "react", "copilotkit", "vercel ai", "flowise",
					"dify", "chat", "ui",
				},
			},
			{
				ID:   "data-and-storage",
				Name: "Data and Storage",
				Terms: []string{
					"database", "postgres", "clickhouse", "supabase",
					"meilisearch", "knowledge", "storage",
				},
			},
			{
				ID:   "systems-and-internals",
				Name: "Systems and Internals",
				Terms: []string{
					"internals", "fiber", "operators", "runtime", "architecture",
					"protocol", "planner",
				},
			},
		},
		FallbackCluster: ClusterRule{ID: "general-software", Name: "General Software"},

		IntentRules: []IntentRule{
			{Tag: "beginner-onboarding", Terms: []string{"getting started", "first", "intro", "beginner"}},
			{Tag: "production-operations", Terms: []string{"production", "deploy", "operations", "scaling", "governance"}},
			{Tag: "architecture-deep-dive", Terms: []string{"architecture", "internals", "deep dive", "design"}},
			{Tag: "tool-selection", Terms: []string{"compare", "selection", "catalog", "awesome"}},
		},
		ClusterIntents: map[string]string{
			"mcp-ecosystem":     "mcp-integration",
			"ai-coding-agents":  "agentic-coding",
			"rag-and-retrieval": "rag-implementation",
		},
		FallbackIntent: "general-learning",

		QueryHubs: defaultQueryHubs(),

		MaxKeywords:   18,
		MaxIntents:    5,
		SummaryMaxLen: 280,
	}
}

func defaultQueryHubs() []QueryHub {
	return []QueryHub{
		{
			ID:      "open-source-coding-agents",
			Title:   "Open-Source Coding Agents",
			Cluster: "ai-coding-agents",
			Intents: []string{"agentic-coding", "production-operations"},
			PreferSlugs: []string{
				"cline-tutorial", "roo-code-tutorial", "opencode-tutorial",
				"codex-cli-tutorial", "continue-tutorial", "openhands-tutorial",
				"sweep-tutorial", "tabby-tutorial", "stagewise-tutorial",
				"daytona-tutorial",
			},
			Queries: []string{
				"best open-source coding agent",
				"open-source ai coding assistant",
				"terminal coding agent workflow",
			},
			Why: "High-commercial-intent comparison and adoption query family.",
		},
		{
			ID:            "mcp-servers-and-sdks",
			Title:         "MCP Servers and SDKs",
			Cluster:       "mcp-ecosystem",
			Intents:       []string{"mcp-integration", "production-operations"},
			MustHaveTerms: []string{"mcp", "model context protocol"},
			PreferSlugs: []string{
				"mcp-python-sdk-tutorial", "fastmcp-tutorial", "mcp-servers-tutorial",
				"mcp-typescript-sdk-tutorial", "mcp-go-sdk-tutorial",
				"mcp-rust-sdk-tutorial", "mcp-java-sdk-tutorial",
				"mcp-csharp-sdk-tutorial", "mcp-registry-tutorial",
				"mcp-inspector-tutorial",
			},
			Queries: []string{
				"best mcp servers",
				"how to build mcp server",
				"model context protocol sdk tutorial",
			},
			Why: "Fast-growing protocol ecosystem with implementation and operations demand.",
		},
		{
			ID:            "rag-and-retrieval-systems",
			Title:         "RAG and Retrieval Systems",
			Cluster:       "rag-and-retrieval",
			Intents:       []string{"rag-implementation", "production-operations"},
			MustHaveTerms: []string{"rag", "retrieval", "vector", "embedding"},
			PreferSlugs: []string{
				"llamaindex-tutorial", "haystack-tutorial", "ragflow-tutorial",
				"chroma-tutorial", "lancedb-tutorial", "quivr-tutorial",
				"mem0-tutorial",
			},
			Queries: []string{
				"how to build rag pipeline",
				"rag framework comparison",
				"vector database tutorial for ai",
			},
			Why: "Common production AI workload with clear architecture and tooling intent.",
		},
		{
			ID:            "llm-infrastructure-serving",
			Title:         "LLM Infrastructure and Serving",
			Cluster:       "llm-infra-serving",
			Intents:       []string{"production-operations"},
			MustHaveTerms: []string{"inference", "serv", "ollama", "vllm", "litellm", "llama.cpp", "localai"},
			PreferSlugs: []string{
				"ollama-tutorial", "vllm-tutorial", "litellm-tutorial",
				"llama-cpp-tutorial", "localai-tutorial", "bentoml-tutorial",
			},
			Queries: []string{
				"serve llm in production",
				"vllm vs ollama vs litellm",
				"self-hosted llm infrastructure",
			},
			Why: "Operations-heavy cluster where searchers are close to deployment decisions.",
		},
		{
			ID:      "ai-app-frameworks",
			Title:   "AI App Frameworks and Product Stacks",
			Cluster: "ai-app-frameworks",
			Intents: []string{"beginner-onboarding", "production-operations"},
			MustHaveTerms: []string{
				"app", "framework", "workflow", "chat", "next.js", "react",
				"copilot", "dify", "flowise", "vercel ai",
			},
			PreferSlugs: []string{
				"vercel-ai-tutorial", "copilotkit-tutorial", "lobechat-ai-platform",
				"flowise-llm-orchestration", "dify-platform-deep-dive",
				"open-webui-tutorial", "chatbox-tutorial",
			},
			Queries: []string{
				"build ai app with nextjs",
				"open-source ai app framework",
				"ai workflow builder tutorial",
			},
			Why: "Application-layer queries for teams choosing implementation stack.",
		},
		{
			ID:            "taskade-ai-genesis-workflows",
			Title:         "Taskade AI, Genesis, and MCP Workflows",
			Cluster:       "taskade-ecosystem",
			Intents:       []string{"beginner-onboarding", "mcp-integration", "production-operations"},
			MustHaveTerms: []string{"taskade", "genesis"},
			PreferSlugs: []string{
				"taskade-tutorial", "taskade-docs-tutorial", "taskade-mcp-tutorial",
				"taskade-awesome-vibe-coding-tutorial",
			},
			Queries: []string{
				"taskade ai tutorial",
				"taskade genesis app builder",
				"taskade docs",
				"taskade workspace dna",
				"taskade mcp setup",
				"taskade automation agents",
			},
			Why: "High-intent Taskade ecosystem journey spanning workspace apps, agents, automations, and MCP integration.",
		},
	}
}
