package simulator

func imp(area Category, value int, reason string) Impact {
	return Impact{Area: area, Value: value, Reason: reason}
}

var decisionCatalog = map[Stage][]Decision{
	StageIdeation: {
		{
			ID:          "ideation_problem_focus",
			Title:       "Define the core problem",
			Description: "Pick the problem your project solves first. It shapes every later decision.",
			Stage:       StageIdeation,
			ImpactAreas: []Category{CategoryTechnology, CategoryCommunity, CategoryBNBIntegration},
			Options: []Option{
				{
					ID: "ideation_problem_bnb_liquidity", Text: "Fragmented liquidity across BNB Chain DEXs",
					Cost: 5000, Risk: RiskMedium, BNBRelevance: 90,
					Impacts: []Impact{
						imp(CategoryBNBIntegration, 15, "Targets a pain point native to BNB Chain"),
						imp(CategoryDeFiReadiness, 10, "Liquidity aggregation is a DeFi primitive"),
						imp(CategoryTechnology, -5, "Routing across many pools is hard to build"),
					},
				},
				{
					ID: "ideation_problem_onboarding", Text: "Onboarding non-crypto users with social login",
					Cost: 3000, Risk: RiskLow, BNBRelevance: 55,
					Impacts: []Impact{
						imp(CategoryCommunity, 12, "Lower barrier grows the user base"),
						imp(CategoryMarketing, 8, "Easy story to tell"),
						imp(CategoryDeFiReadiness, -5, "Little composability with DeFi"),
					},
				},
				{
					ID: "ideation_problem_generic_l1", Text: "A new general purpose L1 chain",
					Cost: 20000, Risk: RiskCritical, BNBRelevance: 10,
					Impacts: []Impact{
						imp(CategoryTechnology, 10, "Deep protocol engineering"),
						imp(CategoryBNBIntegration, -20, "Competes with BNB Chain instead of building on it"),
						imp(CategoryPartnerships, -10, "Ecosystem partners see a rival"),
					},
				},
			},
		},
		{
			ID:          "ideation_market_research",
			Title:       "Validate the market",
			Description: "Decide how much effort goes into validating demand before building.",
			Stage:       StageIdeation,
			ImpactAreas: []Category{CategoryMarketing, CategoryTokenomics},
			Options: []Option{
				{
					ID: "ideation_research_deep", Text: "Run surveys, on-chain analytics and user interviews",
					Cost: 8000, Risk: RiskLow, BNBRelevance: 60,
					Impacts: []Impact{
						imp(CategoryMarketing, 10, "Messaging grounded in real demand"),
						imp(CategoryTokenomics, 5, "Token utility designed around actual usage"),
						imp(CategoryBNBIntegration, 5, "On-chain BSC data reveals ecosystem gaps"),
					},
				},
				{
					ID: "ideation_research_light", Text: "Quick competitor scan only",
					Cost: 1000, Risk: RiskMedium, BNBRelevance: 40,
					Impacts: []Impact{
						imp(CategoryMarketing, 3, "Some positioning awareness"),
						imp(CategoryTokenomics, -3, "Utility assumptions remain untested"),
					},
				},
				{
					ID: "ideation_research_skip", Text: "Skip research and start building",
					Cost: 0, Risk: RiskHigh, BNBRelevance: 20,
					Impacts: []Impact{
						imp(CategoryTechnology, 5, "More time for the prototype"),
						imp(CategoryMarketing, -12, "Product-market fit is a guess"),
						imp(CategoryCommunity, -5, "Nobody asked for it yet"),
					},
				},
			},
		},
	},
	StageDevelopment: {
		{
			ID:          "development_chain_choice",
			Title:       "Choose the deployment chain",
			Description: "Where will the contracts live on day one?",
			Stage:       StageDevelopment,
			ImpactAreas: []Category{CategoryBNBIntegration, CategoryTechnology, CategoryDeFiReadiness},
			Options: []Option{
				{
					ID: "development_chain_bsc", Text: "BNB Smart Chain mainnet",
					Cost: 4000, Risk: RiskLow, BNBRelevance: 100,
					Impacts: []Impact{
						imp(CategoryBNBIntegration, 20, "Native deployment on BSC"),
						imp(CategoryDeFiReadiness, 8, "Direct access to PancakeSwap and Venus liquidity"),
						imp(CategoryTechnology, 3, "Mature EVM tooling"),
					},
				},
				{
					ID: "development_chain_opbnb", Text: "opBNB layer 2 with a BSC bridge",
					Cost: 7000, Risk: RiskMedium, BNBRelevance: 95,
					Impacts: []Impact{
						imp(CategoryBNBIntegration, 18, "Part of the BNB Chain stack"),
						imp(CategoryTechnology, 8, "Cheap high-throughput execution"),
						imp(CategoryDeFiReadiness, 2, "Thinner L2 liquidity for now"),
					},
				},
				{
					ID: "development_chain_multichain", Text: "Launch on five chains at once",
					Cost: 25000, Risk: RiskHigh, BNBRelevance: 45,
					Impacts: []Impact{
						imp(CategoryTechnology, -10, "Bridge and deployment complexity"),
						imp(CategoryMarketing, 8, "Bigger addressable audience"),
						imp(CategoryBNBIntegration, -5, "BNB Chain is one of many"),
						imp(CategoryLegalCompliance, -3, "More jurisdictions and bridges to reason about"),
					},
				},
			},
		},
		{
			ID:          "development_security",
			Title:       "Secure the contracts",
			Description: "How will the smart contracts be reviewed before mainnet?",
			Stage:       StageDevelopment,
			ImpactAreas: []Category{CategoryTechnology, CategoryLegalCompliance, CategoryCommunity},
			Options: []Option{
				{
					ID: "development_audit_top_tier", Text: "Two independent audits plus a bug bounty",
					Cost: 60000, Risk: RiskLow, BNBRelevance: 70,
					Impacts: []Impact{
						imp(CategoryTechnology, 15, "Critical bugs found before launch"),
						imp(CategoryCommunity, 8, "Users trust audited code"),
						imp(CategoryLegalCompliance, 5, "Documented security process"),
					},
				},
				{
					ID: "development_audit_single", Text: "One audit from a mid-tier firm",
					Cost: 20000, Risk: RiskMedium, BNBRelevance: 55,
					Impacts: []Impact{
						imp(CategoryTechnology, 7, "Baseline review done"),
						imp(CategoryCommunity, 3, "Audit badge on the website"),
					},
				},
				{
					ID: "development_audit_none", Text: "Ship unaudited and fix bugs as they appear",
					Cost: 0, Risk: RiskCritical, BNBRelevance: 10,
					Impacts: []Impact{
						imp(CategoryTechnology, -20, "Exploit risk is unmanaged"),
						imp(CategoryCommunity, -15, "Security-minded users stay away"),
						imp(CategoryLegalCompliance, -8, "Negligence exposure after an incident"),
					},
				},
			},
		},
	},
	StageTokenomics: {
		{
			ID:          "tokenomics_supply_model",
			Title:       "Design token supply",
			Description: "Choose the supply schedule of the project token.",
			Stage:       StageTokenomics,
			ImpactAreas: []Category{CategoryTokenomics, CategoryDeFiReadiness},
			Options: []Option{
				{
					ID: "tokenomics_supply_fixed_burn", Text: "Fixed supply with fee burns",
					Cost: 3000, Risk: RiskLow, BNBRelevance: 75,
					Impacts: []Impact{
						imp(CategoryTokenomics, 15, "Deflationary pressure tied to usage"),
						imp(CategoryBNBIntegration, 5, "Mirrors BNB's own auto-burn model"),
					},
				},
				{
					ID: "tokenomics_supply_emissions", Text: "Inflationary emissions for liquidity mining",
					Cost: 5000, Risk: RiskHigh, BNBRelevance: 65,
					Impacts: []Impact{
						imp(CategoryDeFiReadiness, 12, "Deep early liquidity"),
						imp(CategoryTokenomics, -10, "Sell pressure from farmers"),
						imp(CategoryCommunity, 5, "Rewards attract early users"),
					},
				},
				{
					ID: "tokenomics_supply_no_token", Text: "No token, equity funding only",
					Cost: 0, Risk: RiskMedium, BNBRelevance: 15,
					Impacts: []Impact{
						imp(CategoryLegalCompliance, 15, "No securities question for a token"),
						imp(CategoryTokenomics, -15, "No on-chain incentive layer"),
						imp(CategoryDeFiReadiness, -10, "Nothing to compose with"),
					},
				},
			},
		},
		{
			ID:          "tokenomics_distribution",
			Title:       "Allocate the token",
			Description: "Split the supply between team, investors, community and treasury.",
			Stage:       StageTokenomics,
			ImpactAreas: []Category{CategoryTokenomics, CategoryCommunity, CategoryLegalCompliance},
			Options: []Option{
				{
					ID: "tokenomics_dist_community_first", Text: "50% community, 4-year team vesting",
					Cost: 2000, Risk: RiskLow, BNBRelevance: 70,
					Impacts: []Impact{
						imp(CategoryCommunity, 15, "Holders own the majority"),
						imp(CategoryTokenomics, 10, "Long vesting aligns the team"),
					},
				},
				{
					ID: "tokenomics_dist_vc_heavy", Text: "45% to investors with short cliffs",
					Cost: 1000, Risk: RiskHigh, BNBRelevance: 35,
					Impacts: []Impact{
						imp(CategoryPartnerships, 10, "Investors open doors"),
						imp(CategoryTokenomics, -12, "Large unlocks overhang the market"),
						imp(CategoryCommunity, -8, "Community sees exit liquidity"),
					},
				},
				{
					ID: "tokenomics_dist_fair_launch", Text: "Fair launch, no pre-mine",
					Cost: 500, Risk: RiskMedium, BNBRelevance: 60,
					Impacts: []Impact{
						imp(CategoryCommunity, 12, "Strong grassroots legitimacy"),
						imp(CategoryTokenomics, 3, "Clean cap table"),
						imp(CategoryPartnerships, -6, "No treasury to fund deals"),
					},
				},
				{
					ID: "tokenomics_dist_team_majority", Text: "60% kept by the team",
					Cost: 0, Risk: RiskCritical, BNBRelevance: 10,
					Impacts: []Impact{
						imp(CategoryTokenomics, -20, "Centralized supply invites dumping fears"),
						imp(CategoryCommunity, -15, "Red flag for holders"),
						imp(CategoryLegalCompliance, -5, "Looks like an insider scheme"),
					},
				},
			},
		},
	},
	StageCommunityBuilding: {
		{
			ID:          "community_channels",
			Title:       "Grow the community",
			Description: "Where do you invest community effort?",
			Stage:       StageCommunityBuilding,
			ImpactAreas: []Category{CategoryCommunity, CategoryMarketing},
			Options: []Option{
				{
					ID: "community_builders_program", Text: "Developer grants and hackathons with BNB Chain",
					Cost: 30000, Risk: RiskLow, BNBRelevance: 90,
					Impacts: []Impact{
						imp(CategoryCommunity, 15, "Builders become long-term advocates"),
						imp(CategoryBNBIntegration, 10, "Co-hosted ecosystem events"),
						imp(CategoryTechnology, 5, "Third-party integrations appear"),
					},
				},
				{
					ID: "community_airdrop_campaign", Text: "Large airdrop quest campaign",
					Cost: 15000, Risk: RiskMedium, BNBRelevance: 60,
					Impacts: []Impact{
						imp(CategoryCommunity, 10, "Fast follower growth"),
						imp(CategoryMarketing, 8, "Viral reach"),
						imp(CategoryTokenomics, -6, "Airdrop hunters sell on claim"),
					},
				},
				{
					ID: "community_paid_bots", Text: "Buy followers and Telegram members",
					Cost: 2000, Risk: RiskCritical, BNBRelevance: 5,
					Impacts: []Impact{
						imp(CategoryCommunity, -20, "Fake engagement is spotted quickly"),
						imp(CategoryMarketing, -10, "Reputation damage"),
					},
				},
			},
		},
		{
			ID:          "community_governance",
			Title:       "Decide on governance",
			Description: "How much say does the community get?",
			Stage:       StageCommunityBuilding,
			ImpactAreas: []Category{CategoryCommunity, CategoryLegalCompliance},
			Options: []Option{
				{
					ID: "community_gov_progressive_dao", Text: "Progressive decentralization into a DAO",
					Cost: 10000, Risk: RiskLow, BNBRelevance: 65,
					Impacts: []Impact{
						imp(CategoryCommunity, 12, "Clear path to ownership"),
						imp(CategoryLegalCompliance, 5, "Wrapped DAO legal entity"),
					},
				},
				{
					ID: "community_gov_team_controlled", Text: "Team keeps all control",
					Cost: 0, Risk: RiskMedium, BNBRelevance: 30,
					Impacts: []Impact{
						imp(CategoryTechnology, 5, "Fast iteration"),
						imp(CategoryCommunity, -8, "Holders have no voice"),
					},
				},
			},
		},
	},
	StagePartnerships: {
		{
			ID:          "partnerships_strategic",
			Title:       "Pick a strategic partner",
			Description: "Which partnership do you pursue first?",
			Stage:       StagePartnerships,
			ImpactAreas: []Category{CategoryPartnerships, CategoryBNBIntegration, CategoryDeFiReadiness},
			Options: []Option{
				{
					ID: "partnerships_pancakeswap", Text: "Liquidity partnership with PancakeSwap",
					Cost: 20000, Risk: RiskLow, BNBRelevance: 95,
					Impacts: []Impact{
						imp(CategoryPartnerships, 15, "Flagship ecosystem partner"),
						imp(CategoryDeFiReadiness, 12, "Farms and pools at launch"),
						imp(CategoryBNBIntegration, 10, "Deepens BSC presence"),
					},
				},
				{
					ID: "partnerships_bnb_incubator", Text: "Join the BNB Chain incubation program",
					Cost: 5000, Risk: RiskLow, BNBRelevance: 100,
					Impacts: []Impact{
						imp(CategoryBNBIntegration, 15, "Direct support from the chain"),
						imp(CategoryPartnerships, 10, "Mentors and investor network"),
						imp(CategoryMarketing, 5, "Ecosystem spotlight"),
					},
				},
				{
					ID: "partnerships_celebrity", Text: "Celebrity endorsement deal",
					Cost: 80000, Risk: RiskHigh, BNBRelevance: 15,
					Impacts: []Impact{
						imp(CategoryMarketing, 15, "Mainstream attention"),
						imp(CategoryLegalCompliance, -12, "Promotion disclosure risk"),
						imp(CategoryPartnerships, -3, "Serious partners keep distance"),
					},
				},
			},
		},
		{
			ID:          "partnerships_infrastructure",
			Title:       "Integrate infrastructure",
			Description: "Which infrastructure providers do you integrate?",
			Stage:       StagePartnerships,
			ImpactAreas: []Category{CategoryTechnology, CategoryPartnerships},
			Options: []Option{
				{
					ID: "partnerships_oracles_wallets", Text: "Oracles plus Trust Wallet and Binance Web3 Wallet",
					Cost: 12000, Risk: RiskLow, BNBRelevance: 85,
					Impacts: []Impact{
						imp(CategoryTechnology, 8, "Reliable price feeds"),
						imp(CategoryBNBIntegration, 8, "Wallets users already hold"),
						imp(CategoryPartnerships, 6, "Recognized integrations"),
					},
				},
				{
					ID: "partnerships_inhouse_infra", Text: "Build oracles and wallet in-house",
					Cost: 40000, Risk: RiskHigh, BNBRelevance: 30,
					Impacts: []Impact{
						imp(CategoryTechnology, -8, "Reinventing hard infrastructure"),
						imp(CategoryPartnerships, -5, "Fewer integration partners"),
					},
				},
			},
		},
	},
	StagePreLaunch: {
		{
			ID:          "prelaunch_compliance",
			Title:       "Prepare compliance",
			Description: "How do you prepare legally for the token launch?",
			Stage:       StagePreLaunch,
			ImpactAreas: []Category{CategoryLegalCompliance},
			Options: []Option{
				{
					ID: "prelaunch_legal_full", Text: "Legal opinion, KYC on sale and geo-blocking",
					Cost: 35000, Risk: RiskLow, BNBRelevance: 60,
					Impacts: []Impact{
						imp(CategoryLegalCompliance, 20, "Regulatory risk documented and mitigated"),
						imp(CategoryCommunity, -3, "KYC adds friction"),
					},
				},
				{
					ID: "prelaunch_legal_minimal", Text: "Terms of service and a disclaimer",
					Cost: 3000, Risk: RiskMedium, BNBRelevance: 40,
					Impacts: []Impact{
						imp(CategoryLegalCompliance, 5, "Basic protection"),
					},
				},
				{
					ID: "prelaunch_legal_ignore", Text: "Ignore regulation entirely",
					Cost: 0, Risk: RiskCritical, BNBRelevance: 5,
					Impacts: []Impact{
						imp(CategoryLegalCompliance, -25, "Enforcement risk"),
						imp(CategoryPartnerships, -10, "Exchanges will not list you"),
					},
				},
			},
		},
		{
			ID:          "prelaunch_marketing",
			Title:       "Plan launch marketing",
			Description: "Build awareness before the token generation event.",
			Stage:       StagePreLaunch,
			ImpactAreas: []Category{CategoryMarketing, CategoryCommunity},
			Options: []Option{
				{
					ID: "prelaunch_marketing_ecosystem", Text: "BNB Chain ecosystem AMAs and KOL education",
					Cost: 15000, Risk: RiskLow, BNBRelevance: 85,
					Impacts: []Impact{
						imp(CategoryMarketing, 12, "Targeted reach to BSC users"),
						imp(CategoryCommunity, 6, "Educated early holders"),
						imp(CategoryBNBIntegration, 5, "Ecosystem visibility"),
					},
				},
				{
					ID: "prelaunch_marketing_hype", Text: "Countdown hype with price speculation",
					Cost: 10000, Risk: RiskHigh, BNBRelevance: 25,
					Impacts: []Impact{
						imp(CategoryMarketing, 10, "Loud launch"),
						imp(CategoryLegalCompliance, -8, "Price promises invite scrutiny"),
						imp(CategoryTokenomics, -5, "Speculators front-run the launch"),
					},
				},
				{
					ID: "prelaunch_marketing_quiet", Text: "Quiet launch, let the product speak",
					Cost: 0, Risk: RiskMedium, BNBRelevance: 40,
					Impacts: []Impact{
						imp(CategoryMarketing, -8, "Few people notice"),
						imp(CategoryTechnology, 3, "Team stays focused on product"),
					},
				},
			},
		},
	},
	StageLaunch: {
		{
			ID:          "launch_venue",
			Title:       "Choose the launch venue",
			Description: "Where does the token first trade?",
			Stage:       StageLaunch,
			ImpactAreas: []Category{CategoryDeFiReadiness, CategoryBNBIntegration, CategoryMarketing},
			Options: []Option{
				{
					ID: "launch_venue_pancakeswap", Text: "PancakeSwap listing with seeded liquidity",
					Cost: 50000, Risk: RiskMedium, BNBRelevance: 95,
					Impacts: []Impact{
						imp(CategoryDeFiReadiness, 15, "Permissionless liquidity on BSC"),
						imp(CategoryBNBIntegration, 10, "Trading happens on BNB Chain"),
					},
				},
				{
					ID: "launch_venue_launchpad", Text: "Binance ecosystem launchpad",
					Cost: 100000, Risk: RiskMedium, BNBRelevance: 100,
					Impacts: []Impact{
						imp(CategoryMarketing, 15, "Massive exchange audience"),
						imp(CategoryBNBIntegration, 12, "Flagship ecosystem launch"),
						imp(CategoryLegalCompliance, 5, "Exchange due diligence passed"),
					},
				},
				{
					ID: "launch_venue_otc", Text: "Private OTC deals only",
					Cost: 5000, Risk: RiskHigh, BNBRelevance: 20,
					Impacts: []Impact{
						imp(CategoryDeFiReadiness, -10, "No public liquidity"),
						imp(CategoryCommunity, -10, "Retail locked out"),
					},
				},
			},
		},
		{
			ID:          "launch_liquidity_lock",
			Title:       "Lock liquidity",
			Description: "What happens to the launch liquidity?",
			Stage:       StageLaunch,
			ImpactAreas: []Category{CategoryTokenomics, CategoryCommunity},
			Options: []Option{
				{
					ID: "launch_lock_two_years", Text: "Lock LP tokens for two years",
					Cost: 1000, Risk: RiskLow, BNBRelevance: 70,
					Impacts: []Impact{
						imp(CategoryCommunity, 10, "No rug-pull risk"),
						imp(CategoryTokenomics, 8, "Stable liquidity base"),
					},
				},
				{
					ID: "launch_lock_none", Text: "Keep liquidity flexible in the team wallet",
					Cost: 0, Risk: RiskCritical, BNBRelevance: 10,
					Impacts: []Impact{
						imp(CategoryCommunity, -18, "Looks like a rug-pull setup"),
						imp(CategoryTokenomics, -10, "Liquidity can vanish"),
					},
				},
			},
		},
	},
	StagePostLaunch: {
		{
			ID:          "postlaunch_growth",
			Title:       "Drive post-launch growth",
			Description: "Where do you focus once the token is live?",
			Stage:       StagePostLaunch,
			ImpactAreas: []Category{CategoryDeFiReadiness, CategoryTechnology, CategoryCommunity},
			Options: []Option{
				{
					ID: "postlaunch_defi_integrations", Text: "Integrate with Venus lending and BSC yield vaults",
					Cost: 25000, Risk: RiskMedium, BNBRelevance: 95,
					Impacts: []Impact{
						imp(CategoryDeFiReadiness, 15, "Token becomes usable collateral"),
						imp(CategoryBNBIntegration, 10, "Composability inside BNB DeFi"),
						imp(CategoryPartnerships, 5, "New protocol relationships"),
					},
				},
				{
					ID: "postlaunch_product_iteration", Text: "Ship product upgrades from user feedback",
					Cost: 30000, Risk: RiskLow, BNBRelevance: 60,
					Impacts: []Impact{
						imp(CategoryTechnology, 12, "Better product"),
						imp(CategoryCommunity, 8, "Users feel heard"),
					},
				},
				{
					ID: "postlaunch_buybacks", Text: "Spend the treasury on token buybacks",
					Cost: 150000, Risk: RiskHigh, BNBRelevance: 40,
					Impacts: []Impact{
						imp(CategoryTokenomics, 8, "Short-term price support"),
						imp(CategoryTechnology, -8, "Less runway for development"),
					},
				},
			},
		},
		{
			ID:          "postlaunch_treasury",
			Title:       "Manage the treasury",
			Description: "How is the project treasury held?",
			Stage:       StagePostLaunch,
			ImpactAreas: []Category{CategoryTokenomics, CategoryLegalCompliance},
			Options: []Option{
				{
					ID: "postlaunch_treasury_diversified", Text: "Diversify into BNB and stablecoins behind a multisig",
					Cost: 2000, Risk: RiskLow, BNBRelevance: 80,
					Impacts: []Impact{
						imp(CategoryTokenomics, 10, "Runway survives a token drawdown"),
						imp(CategoryLegalCompliance, 5, "Transparent treasury controls"),
						imp(CategoryBNBIntegration, 5, "Treasury aligned with the ecosystem"),
					},
				},
				{
					ID: "postlaunch_treasury_native_only", Text: "Hold only the native token",
					Cost: 0, Risk: RiskHigh, BNBRelevance: 30,
					Impacts: []Impact{
						imp(CategoryTokenomics, -10, "Treasury collapses with the price"),
					},
				},
				{
					ID: "postlaunch_treasury_degen", Text: "Farm high-yield unaudited pools",
					Cost: 0, Risk: RiskCritical, BNBRelevance: 35,
					Impacts: []Impact{
						imp(CategoryTokenomics, -15, "Treasury exposed to exploits"),
						imp(CategoryDeFiReadiness, 5, "Deep DeFi familiarity"),
						imp(CategoryLegalCompliance, -5, "Fiduciary concerns"),
					},
				},
			},
		},
	},
}
