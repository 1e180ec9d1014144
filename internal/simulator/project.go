package simulator

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ProjectType string

const (
	ProjectDeFi           ProjectType = "defi"
	ProjectNFTMarketplace ProjectType = "nft_marketplace"
	ProjectGameFi         ProjectType = "gamefi"
	ProjectInfrastructure ProjectType = "infrastructure"
	ProjectDAO            ProjectType = "dao"
	ProjectSocialFi       ProjectType = "social_fi"
	ProjectMemeToken      ProjectType = "meme_token"
	ProjectAIAgent        ProjectType = "ai_agent"
)

// ProjectTypeInfo describes the economics of a project type.
type ProjectTypeInfo struct {
	Type        ProjectType `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	// BaseValuation is the USD valuation of an average (score 50) project.
	BaseValuation decimal.Decimal `json:"base_valuation"`
	// EcosystemBonus is reported for preferred options; it is advisory and
	// never applied to the score vector.
	EcosystemBonus     int      `json:"ecosystem_bonus"`
	PreferredOptions   []string `json:"preferred_options"`
	ComparableProjects []string `json:"comparable_projects"`
}

var projectTypeOrder = []ProjectType{
	ProjectDeFi,
	ProjectNFTMarketplace,
	ProjectGameFi,
	ProjectInfrastructure,
	ProjectDAO,
	ProjectSocialFi,
	ProjectMemeToken,
	ProjectAIAgent,
}

var projectTypes = map[ProjectType]ProjectTypeInfo{
	ProjectDeFi: {
		Type: ProjectDeFi, Name: "DeFi Protocol",
		Description:    "Lending, DEX or yield protocol",
		BaseValuation:  decimal.NewFromInt(50_000_000),
		EcosystemBonus: 15,
		PreferredOptions: []string{
			"ideation_problem_bnb_liquidity", "development_chain_bsc", "partnerships_pancakeswap",
			"launch_venue_pancakeswap", "postlaunch_defi_integrations",
		},
		ComparableProjects: []string{"PancakeSwap", "Venus Protocol", "Alpaca Finance"},
	},
	ProjectNFTMarketplace: {
		Type: ProjectNFTMarketplace, Name: "NFT Marketplace",
		Description:    "Marketplace for digital collectibles",
		BaseValuation:  decimal.NewFromInt(20_000_000),
		EcosystemBonus: 10,
		PreferredOptions: []string{
			"ideation_problem_onboarding", "development_chain_opbnb", "community_airdrop_campaign",
			"partnerships_oracles_wallets",
		},
		ComparableProjects: []string{"Element Market", "tofuNFT", "Binance NFT"},
	},
	ProjectGameFi: {
		Type: ProjectGameFi, Name: "GameFi",
		Description:    "Play-to-earn or on-chain game",
		BaseValuation:  decimal.NewFromInt(30_000_000),
		EcosystemBonus: 12,
		PreferredOptions: []string{
			"development_chain_opbnb", "tokenomics_supply_emissions", "community_builders_program",
			"launch_venue_launchpad",
		},
		ComparableProjects: []string{"Mobox", "Second Live", "Era7"},
	},
	ProjectInfrastructure: {
		Type: ProjectInfrastructure, Name: "Infrastructure",
		Description:    "Oracles, bridges, indexers or developer tooling",
		BaseValuation:  decimal.NewFromInt(80_000_000),
		EcosystemBonus: 15,
		PreferredOptions: []string{
			"development_audit_top_tier", "partnerships_bnb_incubator", "partnerships_oracles_wallets",
			"community_builders_program",
		},
		ComparableProjects: []string{"Chainlink", "Celer Network", "NodeReal"},
	},
	ProjectDAO: {
		Type: ProjectDAO, Name: "DAO",
		Description:    "Community-governed organization",
		BaseValuation:  decimal.NewFromInt(15_000_000),
		EcosystemBonus: 8,
		PreferredOptions: []string{
			"tokenomics_dist_community_first", "community_gov_progressive_dao",
			"postlaunch_treasury_diversified",
		},
		ComparableProjects: []string{"PancakeSwap DAO", "Venus DAO", "BNB Chain Community"},
	},
	ProjectSocialFi: {
		Type: ProjectSocialFi, Name: "SocialFi",
		Description:    "Social network with on-chain ownership",
		BaseValuation:  decimal.NewFromInt(25_000_000),
		EcosystemBonus: 10,
		PreferredOptions: []string{
			"ideation_problem_onboarding", "community_airdrop_campaign", "prelaunch_marketing_ecosystem",
		},
		ComparableProjects: []string{"CyberConnect", "Galxe", "Space ID"},
	},
	ProjectMemeToken: {
		Type: ProjectMemeToken, Name: "Meme Token",
		Description:    "Community meme coin",
		BaseValuation:  decimal.NewFromInt(5_000_000),
		EcosystemBonus: 5,
		PreferredOptions: []string{
			"tokenomics_dist_fair_launch", "launch_lock_two_years", "launch_venue_pancakeswap",
		},
		ComparableProjects: []string{"BabyDoge", "Floki", "SafeMoon"},
	},
	ProjectAIAgent: {
		Type: ProjectAIAgent, Name: "AI Agent",
		Description:    "Autonomous on-chain AI agents",
		BaseValuation:  decimal.NewFromInt(40_000_000),
		EcosystemBonus: 12,
		PreferredOptions: []string{
			"ideation_research_deep", "development_chain_opbnb", "partnerships_bnb_incubator",
			"postlaunch_product_iteration",
		},
		ComparableProjects: []string{"Fetch.ai", "Virtuals Protocol", "MyShell"},
	},
}

func ProjectTypes() []ProjectTypeInfo {
	out := make([]ProjectTypeInfo, 0, len(projectTypeOrder))
	for _, t := range projectTypeOrder {
		info, _ := LookupProjectType(t)
		out = append(out, info)
	}
	return out
}

func ParseProjectType(raw string) (ProjectType, bool) {
	t := ProjectType(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := projectTypes[t]
	return t, ok
}

func (t ProjectType) Valid() bool {
	_, ok := projectTypes[t]
	return ok
}

func LookupProjectType(t ProjectType) (ProjectTypeInfo, bool) {
	info, ok := projectTypes[t]
	if !ok {
		return ProjectTypeInfo{}, false
	}
	info.PreferredOptions = append([]string(nil), info.PreferredOptions...)
	info.ComparableProjects = append([]string(nil), info.ComparableProjects...)
	return info, true
}

// BonusForOption returns the ecosystem bonus of a project type if optionID is
// one of its preferred options, else 0.
func BonusForOption(t ProjectType, optionID string) int {
	info, ok := projectTypes[t]
	if !ok {
		return 0
	}
	for _, id := range info.PreferredOptions {
		if id == optionID {
			return info.EcosystemBonus
		}
	}
	return 0
}

func projectTypeRank(t ProjectType) int {
	for i, pt := range projectTypeOrder {
		if pt == t {
			return i
		}
	}
	return len(projectTypeOrder)
}
