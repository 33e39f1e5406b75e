package digest

// MaxItemsPerSection caps how many stories a single section can carry per run.
const MaxItemsPerSection = 10

// SectionRules defines one thematic section: source name hints are a strong
// signal (first match wins), keywords are cumulative weak signals.
type SectionRules struct {
	ID          string
	Label       string
	SourceHints []string
	Keywords    []string
}

// DefaultSections returns the six-section rule table in its fixed evaluation
// order. The order matters: categorization ties keep the first-seen section.
func DefaultSections() []SectionRules {
	return []SectionRules{
		{
			ID:    "multilateral_finance",
			Label: "multilateral development finance",
			SourceHints: []string{
				"world bank", "ifc", "asian development bank", "african development bank",
				"aiib", "european investment bank", "ebrd", "new development bank",
				"oecd", "g20", "global infrastructure hub", "un-habitat",
			},
			Keywords: []string{
				"world bank", "ifc ", "adb ", "aiib", "eib ", "ebrd", "ndb ",
				"oecd", "g20", "g7", "multilateral", "development bank",
				"development finance", "concessional", "sovereign guarantee",
				"global infrastructure hub", "un-habitat", "sdg", "mdb ",
				"international finance", "bilateral aid", "official development",
			},
		},
		{
			ID:    "major_economies",
			Label: "major economy infrastructure policy",
			SourceHints: []string{
				"us dot", "federal highway", "us epa", "army corps", "white house",
				"build america", "brookings", "eno center", "asce",
				"reason foundation", "national infrastructure commission",
				"infrastructure & projects authority", "european commission",
				"bruegel", "infrastructure intelligence", "new civil engineer",
				"france", "germany", "bmvi",
				"infrastructure australia", "infrastructure partnerships australia",
				"india", "gati shakti", "niti aayog", "belt and road",
				"japan", "south korea", "asean", "infrastructure asia",
			},
			Keywords: []string{
				"united states", "us dot", "fhwa", "iija", "bipartisan infrastructure",
				"buy america", "european union", "ten-t", "investeu", "european commission",
				"united kingdom", "uk infrastructure", "national infrastructure commission",
				"india infrastructure", "gati shakti", "national infrastructure pipeline",
				"china infrastructure", "belt and road", "bri ", "australia infrastructure",
				"infrastructure australia", "japan infrastructure", "mlit",
				"south korea", "germany infrastructure", "france infrastructure",
				"gulf states", "saudi arabia", "neom", "uae infrastructure",
			},
		},
		{
			ID:    "canada_watch",
			Label: "Canadian infrastructure",
			SourceHints: []string{
				"infrastructure canada", "canada infrastructure bank",
				"infrastructure ontario", "parliamentary budget officer",
				"ontario financial accountability", "c.d. howe",
				"federation of canadian municipalities", "canadian council for p3",
				"renew canada", "daily commercial news",
				"global affairs canada", "canada gazette",
			},
			Keywords: []string{
				"canada", "canadian", "ontario", "quebec", "british columbia",
				"alberta", "infrastructure canada", "infrastructure ontario",
				"canada infrastructure bank", "cib ", "pbo ", "fao ",
				"fcm ", "municipal infrastructure", "provincial infrastructure",
				"ccppp", "p3 canada", "housing accelerator",
				"transit canada", "via rail", "metrolinx",
			},
		},
		{
			ID:    "project_finance_delivery",
			Label: "project finance and delivery",
			SourceHints: []string{
				"world bank ppp", "global infrastructure investor",
				"ijglobal", "infrastructure investor", "preqin",
				"kpmg", "deloitte", "mckinsey",
			},
			Keywords: []string{
				"public-private partnership", "ppp ", "p3 ", "concession",
				"design-build", "design build", "dbfm", "dbfom", "dbo ",
				"alliance contract", "progressive design", "project finance",
				"infrastructure fund", "infrastructure investor",
				"asset recycling", "toll road", "toll revenue",
				"procurement model", "delivery model", "risk allocation",
				"financial close", "bid ", "tender", "rfp ", "rfq ",
				"availability payment", "revenue risk",
				"lifecycle cost", "value for money", "vfm ",
			},
		},
		{
			ID:    "climate_sustainability",
			Label: "climate resilience and sustainability",
			SourceHints: []string{
				"climate bonds", "global commission on adaptation",
				"coalition for climate resilient", "unep",
				"green climate fund", "iea", "irena", "c40",
			},
			Keywords: []string{
				"climate", "green bond", "green infrastructure",
				"resilience", "adaptation", "net zero", "net-zero",
				"renewable energy infrastructure", "clean energy",
				"carbon capture", "ccs ", "ccus", "hydrogen",
				"sustainable infrastructure", "nature-based",
				"flood", "wildfire", "extreme weather",
				"climate bond", "green finance", "esg ",
				"just transition", "energy transition",
				"circular economy", "embodied carbon",
			},
		},
		{
			ID:    "tech_innovation",
			Label: "technology and innovation",
			SourceHints: []string{
				"smart cities world", "digital twin consortium",
				"buildingsmart", "world economic forum",
				"mit senseable", "iot analytics",
			},
			Keywords: []string{
				"digital twin", "bim ", "building information model",
				"smart city", "smart cities", "smart infrastructure",
				"iot ", "internet of things", "artificial intelligence",
				"ai infrastructure", "machine learning",
				"construction technology", "contech", "infratech",
				"govtech", "modular construction", "prefab",
				"3d printing construction", "robotics construction",
				"autonomous vehicle", "ev charging", "5g ",
				"fiber optic", "data center",
			},
		},
	}
}
